package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/filmclub/reelvote/models"
)

// BallotStore owns ballot rows and the one-vote-per-round invariant.
type BallotStore struct {
	db *sql.DB
}

func NewBallotStore(db *sql.DB) *BallotStore {
	return &BallotStore{db: db}
}

// HasVoted reports whether the participant already cast a ballot in the
// round.
func (s *BallotStore) HasVoted(participantID, roundID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM ballot
			WHERE participant_id = $1 AND round_id = $2
		)
	`, participantID, roundID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ballot existence: %w", err)
	}

	return exists, nil
}

// CastBallot records a ballot against the exact round id supplied; resolving
// "current" is the caller's job, via the round ledger. The one-vote-per-round
// rule is enforced by the UNIQUE constraint, not a prior read, so two
// concurrent casts from the same participant cannot both succeed. Dangling
// film or round ids surface as ErrNotFound via the foreign keys.
func (s *BallotStore) CastBallot(participantID, filmID, roundID string, seen bool) (string, error) {
	if strings.TrimSpace(participantID) == "" ||
		strings.TrimSpace(filmID) == "" ||
		strings.TrimSpace(roundID) == "" {
		return "", ErrInvalidInput
	}

	id := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO ballot (id, participant_id, film_id, round_id, seen, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, participantID, filmID, roundID, seen, time.Now())
	if isUniqueViolation(err) {
		return "", ErrDuplicateVote
	}
	if isForeignKeyViolation(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to insert ballot: %w", err)
	}

	return id, nil
}

// VoteCounts tallies seen/unseen ballots for a film within a round.
// Unknown film or round ids are ErrNotFound, so callers can tell "no votes"
// from "no such film".
func (s *BallotStore) VoteCounts(filmID, roundID string) (models.VoteCounts, error) {
	var filmExists, roundExists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM film WHERE id = $1),
		       EXISTS(SELECT 1 FROM round WHERE id = $2)
	`, filmID, roundID).Scan(&filmExists, &roundExists)
	if err != nil {
		return models.VoteCounts{}, fmt.Errorf("failed to check film and round: %w", err)
	}
	if !filmExists || !roundExists {
		return models.VoteCounts{}, ErrNotFound
	}

	var counts models.VoteCounts
	err = s.db.QueryRow(`
		SELECT COALESCE(SUM(CASE WHEN seen THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN seen THEN 0 ELSE 1 END), 0)
		FROM ballot
		WHERE film_id = $1 AND round_id = $2
	`, filmID, roundID).Scan(&counts.Seen, &counts.Unseen)
	if err != nil {
		return models.VoteCounts{}, fmt.Errorf("failed to tally ballots: %w", err)
	}
	counts.Total = counts.Seen + counts.Unseen

	return counts, nil
}
