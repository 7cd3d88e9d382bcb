/*
Package db handles database connection, schema creation, and bootstrap.

# Opening

Open selects the driver from the configured database type (sqlite or
postgres) and returns a ready *sql.DB:

	conn, err := db.Open(cfg)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL sticks to the dialect subset sqlite and postgres share, so one
schema serves both drivers.

# Tables

  - film: Votable films; titles unique case-insensitively
  - round: Voting rounds; a partial unique index guarantees at most one
    active round
  - ballot: One ballot per (participant, round), enforced by a UNIQUE
    constraint; foreign keys to film and round

# Relationships

	film  1──* ballot
	round 1──* ballot

Ballot cascades are handled explicitly inside the film-deletion
transaction, not by ON DELETE CASCADE, so the cascade and the delete share
one atomic boundary.

# Bootstrap

Bootstrap inserts an active "Round 1" when no active round exists. It is a
required initialization step; ActiveRound failing afterwards indicates a
corrupted store, not a user error.
*/
package db
