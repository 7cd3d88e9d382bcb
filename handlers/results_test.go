package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/filmclub/reelvote/models"
	"github.com/filmclub/reelvote/store"
	"github.com/filmclub/reelvote/testutil"
)

func TestGetResultsHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewResultsHandler(store.NewRoundLedger(db), store.NewScorer(db))

	filmA := testutil.AddTestFilm(t, db, "A")
	testutil.AddTestFilm(t, db, "B")
	roundID := testutil.ActiveRoundID(t, db)
	testutil.CastTestBallot(t, db, "p1", filmA, roundID, true)

	// Active-round variant
	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.RoundID != roundID {
		t.Errorf("Expected round %q, got %q", roundID, resp.RoundID)
	}
	if len(resp.Rankings) != 2 {
		t.Fatalf("Expected every film in rankings, got %d entries", len(resp.Rankings))
	}
	if resp.Rankings[0].Title != "A" || resp.Rankings[0].Score != 0.5 {
		t.Errorf("Expected (A, 0.5) first, got (%q, %.1f)", resp.Rankings[0].Title, resp.Rankings[0].Score)
	}
	if resp.Rankings[1].Title != "B" || resp.Rankings[1].Score != 0.0 {
		t.Errorf("Expected (B, 0.0) second, got (%q, %.1f)", resp.Rankings[1].Title, resp.Rankings[1].Score)
	}
}

func TestGetResultsHandlerExplicitRound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewResultsHandler(store.NewRoundLedger(db), store.NewScorer(db))

	filmA := testutil.AddTestFilm(t, db, "A")
	round1 := testutil.ActiveRoundID(t, db)
	testutil.CastTestBallot(t, db, "p1", filmA, round1, false)
	testutil.OpenTestRound(t, db, "Round 2")

	// The closed round's results are still queryable by id
	req := testutil.MakeRequest("GET", "/rounds/"+round1+"/results", nil, nil)
	req.SetPathValue("id", round1)
	w := httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Rankings) != 1 || resp.Rankings[0].Score != 1.0 {
		t.Errorf("Expected historical score 1.0, got %+v", resp.Rankings)
	}

	// Unknown round is a 404
	req = testutil.MakeRequest("GET", "/rounds/no-such-round/results", nil, nil)
	req.SetPathValue("id", "no-such-round")
	w = httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetWinnerHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewResultsHandler(store.NewRoundLedger(db), store.NewScorer(db))

	filmA := testutil.AddTestFilm(t, db, "Second Place")
	filmB := testutil.AddTestFilm(t, db, "First Place")
	roundID := testutil.ActiveRoundID(t, db)
	testutil.CastTestBallot(t, db, "p1", filmA, roundID, true)
	testutil.CastTestBallot(t, db, "p2", filmB, roundID, false)

	req := testutil.MakeRequest("GET", "/winner", nil, nil)
	w := httptest.NewRecorder()

	handler.GetWinner(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.WinnerResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Winner == nil {
		t.Fatal("Expected a winner")
	}
	if resp.Winner.Title != "First Place" || resp.Winner.Score != 1.0 {
		t.Errorf("Expected ('First Place', 1.0), got (%q, %.1f)", resp.Winner.Title, resp.Winner.Score)
	}
}

func TestGetWinnerHandlerEmptyCatalog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewResultsHandler(store.NewRoundLedger(db), store.NewScorer(db))

	req := testutil.MakeRequest("GET", "/winner", nil, nil)
	w := httptest.NewRecorder()

	handler.GetWinner(w, req)

	// Empty catalog is not an error, just no winner
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.WinnerResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Winner != nil {
		t.Errorf("Expected null winner, got %+v", resp.Winner)
	}
}
