package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/filmclub/reelvote/cliparse"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := cliparse.Config{
		DatabaseType: "sqlite",
		DatabaseURL:  filepath.Join(t.TempDir(), "schema_test.db"),
	}
	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestOpenUnsupportedType(t *testing.T) {
	_, err := Open(cliparse.Config{DatabaseType: "mysql", DatabaseURL: "whatever"})
	if err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed on second call: %v", err)
	}

	// All three tables exist
	for _, table := range []string{"film", "round", "ballot"} {
		var count int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
			t.Errorf("Expected table %q to exist: %v", table, err)
		}
	}
}

func TestBootstrap(t *testing.T) {
	conn := openTestDB(t)
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	if err := Bootstrap(conn); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	var name string
	if err := conn.QueryRow(`SELECT name FROM round WHERE active`).Scan(&name); err != nil {
		t.Fatalf("Failed to query active round: %v", err)
	}
	if name != "Round 1" {
		t.Errorf("Expected bootstrap round 'Round 1', got %q", name)
	}

	// Second bootstrap is a no-op
	if err := Bootstrap(conn); err != nil {
		t.Fatalf("Bootstrap failed on second call: %v", err)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM round`).Scan(&count); err != nil {
		t.Fatalf("Failed to count rounds: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 round after repeated bootstrap, got %d", count)
	}
}

func TestSchemaEnforcesSingleActiveRound(t *testing.T) {
	conn := openTestDB(t)
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	if err := Bootstrap(conn); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	// Inserting a second active round trips the partial unique index
	_, err := conn.Exec(`
		INSERT INTO round (id, name, active, created_at)
		VALUES ('second', 'Rogue Round', TRUE, CURRENT_TIMESTAMP)
	`)
	if err == nil {
		t.Error("Expected second active round to violate the unique index")
	}
}
