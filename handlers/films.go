package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/filmclub/reelvote/middleware"
	"github.com/filmclub/reelvote/models"
	"github.com/filmclub/reelvote/store"
)

type FilmHandler struct {
	catalog *store.Catalog
}

func NewFilmHandler(catalog *store.Catalog) *FilmHandler {
	return &FilmHandler{catalog: catalog}
}

// AddFilm handles POST /films (admin)
func (h *FilmHandler) AddFilm(w http.ResponseWriter, r *http.Request) {
	var req models.AddFilmRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	filmID, err := h.catalog.AddItem(req.Title)
	if errors.Is(err, store.ErrInvalidInput) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if errors.Is(err, store.ErrDuplicateItem) {
		middleware.ErrorResponse(w, http.StatusConflict, "Film already exists")
		return
	}
	if err != nil {
		slog.Error("failed to add film", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("film added", "film_id", filmID, "title", req.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.AddFilmResponse{
		FilmID: filmID,
	})
}

// ListFilms handles GET /films
func (h *FilmHandler) ListFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.catalog.ListItems()
	if err != nil {
		slog.Error("failed to list films", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, films)
}

// GetFilm handles GET /films/:id
func (h *FilmHandler) GetFilm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	title, err := h.catalog.GetItem(id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No such film")
		return
	}
	if err != nil {
		slog.Error("failed to get film", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.Film{ID: id, Title: title})
}

// FindFilm handles GET /films/lookup?title=
// Title matching ignores case.
func (h *FilmHandler) FindFilm(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")

	id, err := h.catalog.FindItemByTitle(title)
	if errors.Is(err, store.ErrInvalidInput) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title query parameter is required")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No such film")
		return
	}
	if err != nil {
		slog.Error("failed to find film", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	filmTitle, err := h.catalog.GetItem(id)
	if err != nil {
		slog.Error("failed to get film", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.Film{ID: id, Title: filmTitle})
}

// DeleteFilm handles DELETE /films/:id (admin)
// Removes the film and every ballot referencing it, in one transaction.
func (h *FilmHandler) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	err := h.catalog.DeleteItem(id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No such film")
		return
	}
	if err != nil {
		slog.Error("failed to delete film", "error", err, "film_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("film deleted", "film_id", id)

	w.WriteHeader(http.StatusNoContent)
}
