// Package session defines the pricing session model and its status state
// machine. A session is one price-calculation attempt: it pins a catalog
// version at creation, accumulates wizard inputs, and carries a monotonic
// revision counter used for optimistic concurrency.
//
// All mutation of sessions goes through the lifecycle manager; this package
// only defines the data and the legal status transitions.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/vinetrade/pricecore/internal/value"
)

// Status is the lifecycle state of a pricing session.
type Status string

const (
	// StatusDraft is the initial state, and the state a computed session
	// falls back to when an input changes or evaluation fails.
	StatusDraft Status = "draft"
	// StatusComputed means the latest committed inputs evaluated
	// successfully and a breakdown exists for the current revision.
	StatusComputed Status = "computed"
	// StatusFinalized is terminal: the session is immutable and becomes
	// the source for a generated quote or order.
	StatusFinalized Status = "finalized"
	// StatusAbandoned is terminal: a soft delete.
	StatusAbandoned Status = "abandoned"
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusFinalized || s == StatusAbandoned
}

// CanTransition reports whether moving from s to the target state is legal.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusDraft:
		return to == StatusDraft || to == StatusComputed || to == StatusAbandoned
	case StatusComputed:
		return to == StatusDraft || to == StatusComputed || to == StatusFinalized || to == StatusAbandoned
	default:
		return false
	}
}

// Session is the unit of work for one price calculation.
type Session struct {
	ID      uuid.UUID
	OwnerID string
	// PartnerID is the trade partner this price is computed under; empty
	// for private clients. The override resolver maps it to an
	// organization through the directory capability.
	PartnerID string
	Status    Status
	// CatalogVersion is pinned at creation and never changes, so the
	// session's breakdowns stay reproducible as the catalog evolves.
	CatalogVersion string
	// Inputs maps variable ids to user-supplied values. Only variables
	// whose resolution accepts inputs may appear here.
	Inputs map[string]value.Value
	// Revision increments by exactly one on every committed input change.
	Revision  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a draft session at revision zero pinned to the given catalog
// version.
func New(ownerID, partnerID, catalogVersion string, now time.Time) *Session {
	return &Session{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		PartnerID:      partnerID,
		Status:         StatusDraft,
		CatalogVersion: catalogVersion,
		Inputs:         make(map[string]value.Value),
		Revision:       0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Clone returns a deep copy. Stores hand out clones so no caller ever
// aliases persisted state.
func (s *Session) Clone() *Session {
	c := *s
	c.Inputs = make(map[string]value.Value, len(s.Inputs))
	for id, v := range s.Inputs {
		c.Inputs[id] = v
	}
	return &c
}
