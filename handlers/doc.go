/*
Package handlers implements the HTTP request handlers.

Handlers are the callers of the core store components: they resolve the
active round through the round ledger, gate nothing themselves (admin
gating happens in middleware, on the routes), and translate store sentinel
errors into HTTP statuses with user-facing messages.

  - FilmHandler: film catalog operations (add, list, get, lookup, delete)
  - RoundHandler: round transitions and lookups
  - VotingHandler: ballot casting, ballot status, per-film tallies
  - ResultsHandler: rankings and winner for any round

Raw store or driver errors never reach clients; they are logged and
replaced with a generic message.
*/
package handlers
