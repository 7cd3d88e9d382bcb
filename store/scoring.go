package store

import (
	"database/sql"
	"fmt"

	"github.com/filmclub/reelvote/models"
)

// Scorer derives rankings from the catalog and the ballot rows. It is a
// pure read: any round, past or active, can be scored at any time.
type Scorer struct {
	db *sql.DB
}

func NewScorer(db *sql.DB) *Scorer {
	return &Scorer{db: db}
}

// Score ranks every film in the catalog for the given round. Each ballot
// contributes 0.5 when the film was seen and 1.0 when it was not; films with
// no ballots in the round score 0.0 and still appear. Ordering is score
// descending with title ascending as the tiebreak, so results are
// reproducible.
func (s *Scorer) Score(roundID string) ([]models.FilmScore, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM round WHERE id = $1)
	`, roundID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check round: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := s.db.Query(`
		SELECT f.id, f.title,
		       COALESCE(SUM(
		           CASE
		               WHEN b.seen THEN 0.5
		               WHEN NOT b.seen THEN 1.0
		               ELSE 0
		           END
		       ), 0) AS total_score
		FROM film f
		LEFT JOIN ballot b ON b.film_id = f.id AND b.round_id = $1
		GROUP BY f.id, f.title
		ORDER BY total_score DESC, f.title ASC
	`, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	results := []models.FilmScore{}
	for rows.Next() {
		var fs models.FilmScore
		if err := rows.Scan(&fs.FilmID, &fs.Title, &fs.Score); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		results = append(results, fs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}

	return results, nil
}

// Winner returns the top-ranked film for the round. The boolean is false
// when the catalog is empty - an empty catalog has no winner, and callers
// must handle that case rather than receive an error.
func (s *Scorer) Winner(roundID string) (models.FilmScore, bool, error) {
	results, err := s.Score(roundID)
	if err != nil {
		return models.FilmScore{}, false, err
	}
	if len(results) == 0 {
		return models.FilmScore{}, false, nil
	}

	return results[0], true, nil
}
