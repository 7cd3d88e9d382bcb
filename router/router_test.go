package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/filmclub/reelvote/models"
	"github.com/filmclub/reelvote/testutil"
)

func TestHealthCheck(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/health", nil, nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected body OK, got %q", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/", nil, nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{name: "add film", method: "POST", path: "/films", body: models.AddFilmRequest{Title: "X"}},
		{name: "delete film", method: "DELETE", path: "/films/some-id", body: nil},
		{name: "open round", method: "POST", path: "/rounds", body: models.OpenRoundRequest{Name: "X"}},
		{name: "explicit-round ballot", method: "POST", path: "/rounds/some-id/ballots", body: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No token
			req := testutil.MakeRequest(tt.method, tt.path, tt.body, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			// Wrong token
			req = testutil.MakeRequest(tt.method, tt.path, tt.body, map[string]string{
				"X-Admin-Token": "wrong-token",
			})
			w = httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, http.StatusUnauthorized)
		})
	}
}

// TestVotingFlow exercises the full surface through the router: an operator
// builds the catalog, participants vote, results rank, a new round resets.
func TestVotingFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)
	adminHeaders := map[string]string{"X-Admin-Token": cfg.AdminToken}

	seen := true
	unseen := false

	// Operator adds two films
	var filmA, filmB models.AddFilmResponse
	for _, film := range []struct {
		title string
		resp  *models.AddFilmResponse
	}{
		{title: "A", resp: &filmA},
		{title: "B", resp: &filmB},
	} {
		req := testutil.MakeRequest("POST", "/films", models.AddFilmRequest{Title: film.title}, adminHeaders)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)
		testutil.AssertJSON(t, w, film.resp)
	}

	// Participant 1 checks status, then votes A seen
	req := testutil.MakeRequest("GET", "/ballots/status?participant_id=p1", nil, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var status models.HasVotedResponse
	testutil.AssertJSON(t, w, &status)
	if status.HasVoted {
		t.Error("Expected p1 to not have voted yet")
	}

	req = testutil.MakeRequest("POST", "/ballots", models.CastBallotRequest{
		ParticipantID: "p1", FilmID: filmA.FilmID, Seen: &seen,
	}, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Participant 2 votes B unseen
	req = testutil.MakeRequest("POST", "/ballots", models.CastBallotRequest{
		ParticipantID: "p2", FilmID: filmB.FilmID, Seen: &unseen,
	}, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Participant 1 cannot vote again
	req = testutil.MakeRequest("POST", "/ballots", models.CastBallotRequest{
		ParticipantID: "p1", FilmID: filmB.FilmID, Seen: &unseen,
	}, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Results: B (1.0) over A (0.5)
	req = testutil.MakeRequest("GET", "/results", nil, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	round1 := results.RoundID
	if len(results.Rankings) != 2 ||
		results.Rankings[0].Title != "B" || results.Rankings[0].Score != 1.0 ||
		results.Rankings[1].Title != "A" || results.Rankings[1].Score != 0.5 {
		t.Errorf("Unexpected rankings: %+v", results.Rankings)
	}

	// Operator opens round 2; the new round starts from zero
	req = testutil.MakeRequest("POST", "/rounds", models.OpenRoundRequest{Name: "Round 2"}, adminHeaders)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	req = testutil.MakeRequest("GET", "/results", nil, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	testutil.AssertJSON(t, w, &results)
	for _, entry := range results.Rankings {
		if entry.Score != 0.0 {
			t.Errorf("Expected fresh round to score 0.0, got %+v", entry)
		}
	}

	// Round 1 history is intact
	req = testutil.MakeRequest("GET", "/rounds/"+round1+"/winner", nil, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var winner models.WinnerResponse
	testutil.AssertJSON(t, w, &winner)
	if winner.Winner == nil || winner.Winner.Title != "B" {
		t.Errorf("Expected round 1 winner B, got %+v", winner.Winner)
	}

	// And p1 may vote again in the new round
	req = testutil.MakeRequest("POST", "/ballots", models.CastBallotRequest{
		ParticipantID: "p1", FilmID: filmB.FilmID, Seen: &seen,
	}, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)
}
