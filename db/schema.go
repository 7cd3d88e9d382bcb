package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/filmclub/reelvote/cliparse"
)

// Open connects to the configured database. Sqlite gets foreign keys and a
// busy timeout enabled via pragmas and is capped at a single connection,
// matching its single-writer model. Postgres pools normally.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "postgres":
		return sql.Open("postgres", cfg.DatabaseURL)
	case "sqlite", "":
		dsn := cfg.DatabaseURL
		if !strings.HasPrefix(dsn, "file:") {
			dsn = "file:" + dsn
		}
		if strings.Contains(dsn, "?") {
			dsn += "&"
		} else {
			dsn += "?"
		}
		dsn += "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

		conn, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		conn.SetMaxOpenConns(1)
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Bootstrap ensures exactly one active round exists, creating "Round 1" on
// first use. Idempotent; required before serving traffic.
func Bootstrap(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM round WHERE active`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count active rounds: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO round (id, name, active, created_at)
		VALUES ($1, 'Round 1', TRUE, $2)
	`, uuid.NewString(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to create bootstrap round: %w", err)
	}

	return nil
}

// The DDL is deliberately restricted to the dialect both sqlite and postgres
// share: TEXT keys, boolean literals, partial and expression indexes.
const schema = `
-- Films
CREATE TABLE IF NOT EXISTS film (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL UNIQUE
);

-- Title uniqueness is case-insensitive
CREATE UNIQUE INDEX IF NOT EXISTS idx_film_title_nocase ON film (LOWER(title));

-- Rounds
CREATE TABLE IF NOT EXISTS round (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    active BOOLEAN NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- At most one active round at any time
CREATE UNIQUE INDEX IF NOT EXISTS idx_round_single_active ON round (active) WHERE active;

-- Ballots
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    participant_id TEXT NOT NULL,
    film_id TEXT NOT NULL REFERENCES film(id),
    round_id TEXT NOT NULL REFERENCES round(id),
    seen BOOLEAN NOT NULL,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (participant_id, round_id)
);

CREATE INDEX IF NOT EXISTS idx_ballot_round ON ballot(round_id);
CREATE INDEX IF NOT EXISTS idx_ballot_film_round ON ballot(film_id, round_id);
`
