/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Flags take precedence over environment variables. A .env file in the
working directory is loaded before the environment is consulted.

# Settings

  - -p / PORT: server port (default 8090)
  - -d / DATABASE_URL: sqlite file path or postgres connection string
    (default film_voting.db)
  - -t / DATABASE_TYPE: "sqlite" or "postgres" (default sqlite)
  - -admin-token / ADMIN_TOKEN: operator token gating film and round
    mutations; may be empty, in which case main generates one per run

A database URL is only mandatory for postgres; sqlite falls back to a
local file.
*/
package cliparse
