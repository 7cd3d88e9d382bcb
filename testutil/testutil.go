package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/filmclub/reelvote/cliparse"
	"github.com/filmclub/reelvote/db"
)

// SetupTestDB creates a fresh sqlite database in a temp directory with the
// full schema and a bootstrapped active round. No external server needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn := SetupBareDB(t)
	if err := db.Bootstrap(conn); err != nil {
		t.Fatalf("Failed to bootstrap test database: %v", err)
	}

	return conn
}

// SetupBareDB creates the schema but skips bootstrap, for tests that need a
// store with no active round.
func SetupBareDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := cliparse.Config{
		DatabaseType: "sqlite",
		DatabaseURL:  filepath.Join(t.TempDir(), "reelvote_test.db"),
	}

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8090,
		DatabaseType: "sqlite",
		AdminToken:   "test-admin-token",
	}
}

// AddTestFilm inserts a film directly and returns its id
func AddTestFilm(t *testing.T, conn *sql.DB, title string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO film (id, title) VALUES ($1, $2)
	`, id, title)
	if err != nil {
		t.Fatalf("Failed to create test film: %v", err)
	}

	return id
}

// ActiveRoundID returns the id of the currently active round
func ActiveRoundID(t *testing.T, conn *sql.DB) string {
	t.Helper()

	var id string
	if err := conn.QueryRow(`SELECT id FROM round WHERE active`).Scan(&id); err != nil {
		t.Fatalf("Failed to query active round: %v", err)
	}

	return id
}

// OpenTestRound flips the active round directly and returns the new round id
func OpenTestRound(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	if _, err := conn.Exec(`UPDATE round SET active = FALSE WHERE active`); err != nil {
		t.Fatalf("Failed to deactivate round: %v", err)
	}

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO round (id, name, active, created_at)
		VALUES ($1, $2, TRUE, $3)
	`, id, name, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test round: %v", err)
	}

	return id
}

// CastTestBallot inserts a ballot directly and returns its id
func CastTestBallot(t *testing.T, conn *sql.DB, participantID, filmID, roundID string, seen bool) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO ballot (id, participant_id, film_id, round_id, seen, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, participantID, filmID, roundID, seen, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test ballot: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
