/*
Package models defines the domain types and the request/response types of
the HTTP API.

Domain types (Film, Round, Ballot, VoteCounts, FilmScore) mirror the three
persisted relations plus the derived scoring rows. Request and response
types exist purely for JSON shape; handlers translate between the two.
*/
package models
