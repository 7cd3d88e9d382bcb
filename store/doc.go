/*
Package store implements the core of the voting ledger: the film catalog,
the round ledger, the ballot store, and the scoring engine.

Each component takes an injected *sql.DB at construction and owns one slice
of state:

  - Catalog: film rows; deleting a film cascades to its ballots inside one
    transaction
  - RoundLedger: round rows and the single-active-round invariant; OpenRound
    is the only activation mutator
  - BallotStore: ballot rows and the one-ballot-per-(participant, round)
    invariant, enforced by the store's UNIQUE constraint rather than a
    check-then-act read
  - Scorer: pure ranking reads over catalog + ballots for any round id

# Errors

Operations return sentinel errors callers can match with errors.Is:
ErrInvalidInput, ErrNotFound, ErrDuplicateItem, ErrDuplicateVote,
ErrNoActiveRound. Driver constraint errors never escape; they are
classified (pq error codes, sqlite message fragments) and mapped to the
sentinels. Anything else is a wrapped store failure - no internal retry.

# Scoring

A seen ballot contributes 0.5 to a film's score, an unseen ballot 1.0, and
films with no ballots in a round score 0.0 but still appear in results.
Scores are recomputed live from current state, including for closed rounds.
*/
package store
