package router

import (
	"database/sql"
	"net/http"

	"github.com/filmclub/reelvote/cliparse"
	"github.com/filmclub/reelvote/handlers"
	"github.com/filmclub/reelvote/middleware"
	"github.com/filmclub/reelvote/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Core components, one per owned slice of state
	catalog := store.NewCatalog(db)
	ledger := store.NewRoundLedger(db)
	ballots := store.NewBallotStore(db)
	scorer := store.NewScorer(db)

	// Initialize handlers
	filmHandler := handlers.NewFilmHandler(catalog)
	roundHandler := handlers.NewRoundHandler(ledger)
	votingHandler := handlers.NewVotingHandler(ledger, ballots)
	resultsHandler := handlers.NewResultsHandler(ledger, scorer)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.AdminToken, h))
	}
	public := middleware.WithLogging

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Film catalog (mutations are operator-only)
	mux.HandleFunc("POST /films", admin(filmHandler.AddFilm))
	mux.HandleFunc("GET /films", public(filmHandler.ListFilms))
	mux.HandleFunc("GET /films/lookup", public(filmHandler.FindFilm))
	mux.HandleFunc("GET /films/{id}", public(filmHandler.GetFilm))
	mux.HandleFunc("DELETE /films/{id}", admin(filmHandler.DeleteFilm))
	mux.HandleFunc("GET /films/{id}/counts", public(votingHandler.GetVoteCounts))

	// Round ledger (opening rounds is operator-only)
	mux.HandleFunc("POST /rounds", admin(roundHandler.OpenRound))
	mux.HandleFunc("GET /rounds/active", public(roundHandler.GetActiveRound))
	mux.HandleFunc("GET /rounds/{id}", public(roundHandler.GetRound))

	// Voting
	mux.HandleFunc("POST /ballots", public(votingHandler.CastBallot))
	mux.HandleFunc("GET /ballots/status", public(votingHandler.GetBallotStatus))
	mux.HandleFunc("POST /rounds/{id}/ballots", admin(votingHandler.CastBallotInRound))

	// Results (any round, past or active)
	mux.HandleFunc("GET /results", public(resultsHandler.GetResults))
	mux.HandleFunc("GET /winner", public(resultsHandler.GetWinner))
	mux.HandleFunc("GET /rounds/{id}/results", public(resultsHandler.GetResults))
	mux.HandleFunc("GET /rounds/{id}/winner", public(resultsHandler.GetWinner))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("reelvote API v1"))
	})

	return mux
}
