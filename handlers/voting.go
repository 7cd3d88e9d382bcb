package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/filmclub/reelvote/middleware"
	"github.com/filmclub/reelvote/models"
	"github.com/filmclub/reelvote/store"
)

type VotingHandler struct {
	ledger  *store.RoundLedger
	ballots *store.BallotStore
}

func NewVotingHandler(ledger *store.RoundLedger, ballots *store.BallotStore) *VotingHandler {
	return &VotingHandler{ledger: ledger, ballots: ballots}
}

// activeRoundID resolves the active round for handlers that default to it.
// The ballot store itself never resolves "current"; that is this caller's
// job, through the round ledger.
func (h *VotingHandler) activeRoundID(w http.ResponseWriter) (string, bool) {
	round, err := h.ledger.ActiveRound()
	if errors.Is(err, store.ErrNoActiveRound) {
		slog.Error("no active round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No active round")
		return "", false
	}
	if err != nil {
		slog.Error("failed to get active round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return "", false
	}
	return round.ID, true
}

// CastBallot handles POST /ballots
// Records a ballot in the currently active round.
func (h *VotingHandler) CastBallot(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.activeRoundID(w)
	if !ok {
		return
	}
	h.castBallot(w, r, roundID)
}

// CastBallotInRound handles POST /rounds/:id/ballots (admin)
// Records a ballot against an explicit round id, active or not - the
// administrative correction path.
func (h *VotingHandler) CastBallotInRound(w http.ResponseWriter, r *http.Request) {
	roundID := r.PathValue("id")
	if roundID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "round id is required")
		return
	}
	h.castBallot(w, r, roundID)
}

func (h *VotingHandler) castBallot(w http.ResponseWriter, r *http.Request, roundID string) {
	var req models.CastBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Seen == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "seen is required")
		return
	}

	ballotID, err := h.ballots.CastBallot(req.ParticipantID, req.FilmID, roundID, *req.Seen)
	if errors.Is(err, store.ErrInvalidInput) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id and film_id are required")
		return
	}
	if errors.Is(err, store.ErrDuplicateVote) {
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted in this round")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No such film or round")
		return
	}
	if err != nil {
		slog.Error("failed to cast ballot", "error", err, "round_id", roundID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("ballot cast", "ballot_id", ballotID, "round_id", roundID)

	middleware.JSONResponse(w, http.StatusCreated, models.CastBallotResponse{
		BallotID: ballotID,
		RoundID:  roundID,
		Message:  "Vote recorded",
	})
}

// GetBallotStatus handles GET /ballots/status?participant_id=&round_id=
// round_id defaults to the active round.
func (h *VotingHandler) GetBallotStatus(w http.ResponseWriter, r *http.Request) {
	participantID := r.URL.Query().Get("participant_id")
	if participantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id query parameter is required")
		return
	}

	roundID := r.URL.Query().Get("round_id")
	if roundID == "" {
		var ok bool
		roundID, ok = h.activeRoundID(w)
		if !ok {
			return
		}
	}

	voted, err := h.ballots.HasVoted(participantID, roundID)
	if err != nil {
		slog.Error("failed to check ballot status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{
		ParticipantID: participantID,
		RoundID:       roundID,
		HasVoted:      voted,
	})
}

// GetVoteCounts handles GET /films/:id/counts?round_id=
// round_id defaults to the active round.
func (h *VotingHandler) GetVoteCounts(w http.ResponseWriter, r *http.Request) {
	filmID := r.PathValue("id")
	if filmID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	roundID := r.URL.Query().Get("round_id")
	if roundID == "" {
		var ok bool
		roundID, ok = h.activeRoundID(w)
		if !ok {
			return
		}
	}

	counts, err := h.ballots.VoteCounts(filmID, roundID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No such film or round")
		return
	}
	if err != nil {
		slog.Error("failed to tally votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteCountsResponse{
		FilmID:  filmID,
		RoundID: roundID,
		Seen:    counts.Seen,
		Unseen:  counts.Unseen,
		Total:   counts.Total,
	})
}
