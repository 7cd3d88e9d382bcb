package models

import "time"

// Request types

type AddFilmRequest struct {
	Title string `json:"title"`
}

type OpenRoundRequest struct {
	Name string `json:"name"`
}

// Seen is a pointer so a missing field is distinguishable from seen=false.
type CastBallotRequest struct {
	ParticipantID string `json:"participant_id"`
	FilmID        string `json:"film_id"`
	Seen          *bool  `json:"seen"`
}

// Response types

type AddFilmResponse struct {
	FilmID string `json:"film_id"`
}

type OpenRoundResponse struct {
	RoundID string `json:"round_id"`
}

type CastBallotResponse struct {
	BallotID string `json:"ballot_id"`
	RoundID  string `json:"round_id"`
	Message  string `json:"message"`
}

type RoundResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	Opened    string    `json:"opened"`
}

type HasVotedResponse struct {
	ParticipantID string `json:"participant_id"`
	RoundID       string `json:"round_id"`
	HasVoted      bool   `json:"has_voted"`
}

type VoteCountsResponse struct {
	FilmID  string `json:"film_id"`
	RoundID string `json:"round_id"`
	Seen    int    `json:"seen"`
	Unseen  int    `json:"unseen"`
	Total   int    `json:"total"`
}

type ResultsResponse struct {
	RoundID   string      `json:"round_id"`
	RoundName string      `json:"round_name"`
	Rankings  []FilmScore `json:"rankings"`
}

// Winner is nil when the catalog is empty - there is no winner to report.
type WinnerResponse struct {
	RoundID   string     `json:"round_id"`
	RoundName string     `json:"round_name"`
	Winner    *FilmScore `json:"winner"`
}

// Domain types

type Film struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Round struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type Ballot struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participant_id"`
	FilmID        string    `json:"film_id"`
	RoundID       string    `json:"round_id"`
	Seen          bool      `json:"seen"`
	CreatedAt     time.Time `json:"created_at"`
}

type VoteCounts struct {
	Seen   int `json:"seen"`
	Unseen int `json:"unseen"`
	Total  int `json:"total"`
}

type FilmScore struct {
	FilmID string  `json:"film_id"`
	Title  string  `json:"title"`
	Score  float64 `json:"score"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
