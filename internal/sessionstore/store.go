// Package sessionstore defines the persistence capability the pricing core
// is specified against. The engine and lifecycle manager know nothing about
// the concrete database; they require only this contract.
//
// # Why the interface lives here
//
// Keeping the interface in its own package (separate from the in-memory
// implementation in internal/memstore) keeps the dependency arrow pointing
// one way: business logic depends on the contract, implementations depend
// on the contract, and neither depends on the other.
//
// # Optimistic concurrency
//
// SaveSession is a conditional write keyed on (sessionID, expectedRevision).
// Two concurrent saves against the same expected revision can never both
// succeed; the loser receives ErrRevisionConflict, a typed conflict rather
// than a generic database error, so callers can distinguish
// refetch-and-retry from genuine failures.
package sessionstore

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vinetrade/pricecore/internal/breakdown"
	"github.com/vinetrade/pricecore/internal/session"
)

// ErrSessionNotFound is returned when the session id is unknown.
var ErrSessionNotFound = errors.New("session not found")

// ErrRevisionConflict is returned when a conditional write loses a race:
// the stored revision no longer matches the revision the caller observed.
var ErrRevisionConflict = errors.New("session revision conflict")

// ErrDuplicateSession is returned when creating a session whose id already
// exists.
var ErrDuplicateSession = errors.New("session already exists")

// Store is the session persistence capability.
//
// Implementations must be safe for concurrent use and must not let callers
// alias stored state: loads return copies, and saves copy their arguments.
type Store interface {
	// CreateSession persists a brand-new session.
	CreateSession(ctx context.Context, s *session.Session) error

	// LoadSession returns a copy of the stored session.
	LoadSession(ctx context.Context, id uuid.UUID) (*session.Session, error)

	// SaveSession writes an updated session if and only if the stored
	// revision equals expectedRevision. On mismatch it returns
	// ErrRevisionConflict and leaves stored state untouched.
	SaveSession(ctx context.Context, s *session.Session, expectedRevision int64) error

	// AppendBreakdown appends an evaluation artifact to the session's
	// history. Breakdowns are immutable and never replaced.
	AppendBreakdown(ctx context.Context, b *breakdown.Breakdown) error

	// LatestBreakdown returns the most recently appended breakdown for a
	// session, or (nil, nil) when the session has none yet.
	LatestBreakdown(ctx context.Context, sessionID uuid.UUID) (*breakdown.Breakdown, error)

	// BreakdownHistory returns every breakdown for a session in append
	// order — the full audit trail of how the price evolved.
	BreakdownHistory(ctx context.Context, sessionID uuid.UUID) ([]*breakdown.Breakdown, error)
}
