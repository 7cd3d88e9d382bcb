package store

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/filmclub/reelvote/models"
)

// RoundLedger owns the sequence of rounds and their activation state.
// Exactly one round is active at a time; OpenRound is the sole mutator.
type RoundLedger struct {
	db *sql.DB

	// Serializes round transitions. The partial unique index on
	// round(active) is the store-level backstop.
	mu sync.Mutex
}

func NewRoundLedger(db *sql.DB) *RoundLedger {
	return &RoundLedger{db: db}
}

// ActiveRound returns the currently active round. ErrNoActiveRound only
// occurs if the store was never bootstrapped.
func (l *RoundLedger) ActiveRound() (models.Round, error) {
	var r models.Round
	err := l.db.QueryRow(`
		SELECT id, name, active, created_at FROM round WHERE active
	`).Scan(&r.ID, &r.Name, &r.Active, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Round{}, ErrNoActiveRound
	}
	if err != nil {
		return models.Round{}, fmt.Errorf("failed to query active round: %w", err)
	}

	return r, nil
}

// OpenRound deactivates the current round and inserts a new active one in a
// single transaction. A reader never observes zero or two active rounds.
// Names are free-form and not required to be unique, but must be non-empty.
func (l *RoundLedger) OpenRound(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidInput
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx, err := l.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE round SET active = FALSE WHERE active`); err != nil {
		return "", fmt.Errorf("failed to deactivate current round: %w", err)
	}

	id := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO round (id, name, active, created_at)
		VALUES ($1, $2, TRUE, $3)
	`, id, name, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to insert round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit round transition: %w", err)
	}

	return id, nil
}

// GetRound returns the round with the given id, active or not.
func (l *RoundLedger) GetRound(id string) (models.Round, error) {
	var r models.Round
	err := l.db.QueryRow(`
		SELECT id, name, active, created_at FROM round WHERE id = $1
	`, id).Scan(&r.ID, &r.Name, &r.Active, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Round{}, ErrNotFound
	}
	if err != nil {
		return models.Round{}, fmt.Errorf("failed to query round: %w", err)
	}

	return r, nil
}
