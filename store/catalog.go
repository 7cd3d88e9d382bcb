package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/filmclub/reelvote/models"
)

// Catalog owns the set of votable films.
type Catalog struct {
	db *sql.DB
}

func NewCatalog(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

// AddItem creates a film and returns its id. Titles are trimmed and must be
// non-empty; uniqueness is case-insensitive, enforced by the store.
func (c *Catalog) AddItem(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrInvalidInput
	}

	id := uuid.NewString()
	_, err := c.db.Exec(`
		INSERT INTO film (id, title) VALUES ($1, $2)
	`, id, title)
	if isUniqueViolation(err) {
		return "", ErrDuplicateItem
	}
	if err != nil {
		return "", fmt.Errorf("failed to insert film: %w", err)
	}

	return id, nil
}

// ListItems returns all films sorted by title, ascending.
func (c *Catalog) ListItems() ([]models.Film, error) {
	rows, err := c.db.Query(`
		SELECT id, title FROM film ORDER BY title
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query films: %w", err)
	}
	defer rows.Close()

	films := []models.Film{}
	for rows.Next() {
		var f models.Film
		if err := rows.Scan(&f.ID, &f.Title); err != nil {
			return nil, fmt.Errorf("failed to scan film: %w", err)
		}
		films = append(films, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read films: %w", err)
	}

	return films, nil
}

// GetItem returns the title of the film with the given id.
func (c *Catalog) GetItem(id string) (string, error) {
	var title string
	err := c.db.QueryRow(`
		SELECT title FROM film WHERE id = $1
	`, id).Scan(&title)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query film: %w", err)
	}

	return title, nil
}

// FindItemByTitle looks a film up by title, ignoring case. Since titles are
// unique case-insensitively, the match is never ambiguous.
func (c *Catalog) FindItemByTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrInvalidInput
	}

	var id string
	err := c.db.QueryRow(`
		SELECT id FROM film WHERE LOWER(title) = LOWER($1)
	`, title).Scan(&id)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query film by title: %w", err)
	}

	return id, nil
}

// DeleteItem removes a film and every ballot referencing it, in one
// transaction. Round state is untouched.
func (c *Catalog) DeleteItem(id string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Ballots first, so the foreign key never dangles mid-transaction.
	if _, err := tx.Exec(`DELETE FROM ballot WHERE film_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete ballots for film: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM film WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete film: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit film deletion: %w", err)
	}

	return nil
}
