package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/filmclub/reelvote/middleware"
	"github.com/filmclub/reelvote/models"
	"github.com/filmclub/reelvote/store"
)

type ResultsHandler struct {
	ledger *store.RoundLedger
	scorer *store.Scorer
}

func NewResultsHandler(ledger *store.RoundLedger, scorer *store.Scorer) *ResultsHandler {
	return &ResultsHandler{ledger: ledger, scorer: scorer}
}

func (h *ResultsHandler) resolveRound(w http.ResponseWriter, r *http.Request) (models.Round, bool) {
	id := r.PathValue("id")
	if id == "" {
		// Active-round variants of the routes carry no id
		round, err := h.ledger.ActiveRound()
		if errors.Is(err, store.ErrNoActiveRound) {
			slog.Error("no active round", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "No active round")
			return models.Round{}, false
		}
		if err != nil {
			slog.Error("failed to get active round", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return models.Round{}, false
		}
		return round, true
	}

	round, err := h.ledger.GetRound(id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No such round")
		return models.Round{}, false
	}
	if err != nil {
		slog.Error("failed to get round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Round{}, false
	}
	return round, true
}

// GetResults handles GET /results and GET /rounds/:id/results
// Every film in the catalog appears, including ones with no ballots.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	round, ok := h.resolveRound(w, r)
	if !ok {
		return
	}

	rankings, err := h.scorer.Score(round.ID)
	if err != nil {
		slog.Error("failed to score round", "error", err, "round_id", round.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		RoundID:   round.ID,
		RoundName: round.Name,
		Rankings:  rankings,
	})
}

// GetWinner handles GET /winner and GET /rounds/:id/winner
// An empty catalog yields a null winner, not an error.
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	round, ok := h.resolveRound(w, r)
	if !ok {
		return
	}

	winner, found, err := h.scorer.Winner(round.ID)
	if err != nil {
		slog.Error("failed to compute winner", "error", err, "round_id", round.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.WinnerResponse{
		RoundID:   round.ID,
		RoundName: round.Name,
	}
	if found {
		resp.Winner = &winner
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
