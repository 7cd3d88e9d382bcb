package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/filmclub/reelvote/middleware"
	"github.com/filmclub/reelvote/models"
	"github.com/filmclub/reelvote/store"
)

type RoundHandler struct {
	ledger *store.RoundLedger
}

func NewRoundHandler(ledger *store.RoundLedger) *RoundHandler {
	return &RoundHandler{ledger: ledger}
}

func roundResponse(r models.Round) models.RoundResponse {
	return models.RoundResponse{
		ID:        r.ID,
		Name:      r.Name,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
		Opened:    humanize.Time(r.CreatedAt),
	}
}

// OpenRound handles POST /rounds (admin)
// Atomically closes the current round and opens a new one.
func (h *RoundHandler) OpenRound(w http.ResponseWriter, r *http.Request) {
	var req models.OpenRoundRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	roundID, err := h.ledger.OpenRound(req.Name)
	if errors.Is(err, store.ErrInvalidInput) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if err != nil {
		slog.Error("failed to open round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("round opened", "round_id", roundID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.OpenRoundResponse{
		RoundID: roundID,
	})
}

// GetActiveRound handles GET /rounds/active
func (h *RoundHandler) GetActiveRound(w http.ResponseWriter, r *http.Request) {
	round, err := h.ledger.ActiveRound()
	if errors.Is(err, store.ErrNoActiveRound) {
		// Unreachable after bootstrap; a missing active round means the
		// store is corrupted.
		slog.Error("no active round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "No active round")
		return
	}
	if err != nil {
		slog.Error("failed to get active round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, roundResponse(round))
}

// GetRound handles GET /rounds/:id
func (h *RoundHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	round, err := h.ledger.GetRound(id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No such round")
		return
	}
	if err != nil {
		slog.Error("failed to get round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, roundResponse(round))
}
