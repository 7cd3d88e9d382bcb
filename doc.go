/*
Package main provides the entry point for the reelvote API server.

Reelvote is a round-scoped film voting ledger: each participant casts one
ballot per voting round (a film plus a seen/unseen signal), ballots aggregate
into a deterministic ranking, and an operator can open a new round without
losing the history of past ones.

# Starting the Server

The server runs on sqlite out of the box:

	go run main.go

Or against postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Configuration

Optional settings (flags or environment, .env files are honored):

  - PORT (-p): Server port (default: 8090)
  - DATABASE_URL (-d): Database file or connection string (default: film_voting.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_TOKEN (-admin-token): Operator token gating film and round
    mutations; generated and logged if unset

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: Core components (catalog, round ledger, ballot store, scorer)
  - handlers: HTTP request handlers (films, rounds, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, JSON helpers, admin gating
  - models: Request/response types
  - auth: Admin token generation and verification
  - db: Driver selection, schema creation, bootstrap
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
