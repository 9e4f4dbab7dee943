// Package authz defines the authorization capability the pricing core asks
// of its caller. The core never implements authorization logic itself; it
// only asks "is this caller an admin" or "is this caller the owner or an
// admin" at each operation boundary.
package authz

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrForbidden is returned when the caller lacks the required capability.
// It is recoverable from the caller's perspective but must not be retried
// with the same credentials.
var ErrForbidden = errors.New("forbidden")

// Authorizer is the capability interface supplied by the surrounding
// application.
type Authorizer interface {
	// RequireAdmin fails with ErrForbidden unless callerID is an admin.
	RequireAdmin(ctx context.Context, callerID string) error

	// RequireOwnerOrAdmin fails with ErrForbidden unless callerID equals
	// ownerID or is an admin.
	RequireOwnerOrAdmin(ctx context.Context, callerID, ownerID string) error
}

// Static is a fixed-membership Authorizer for the CLI and tests.
type Static struct {
	mu     sync.RWMutex
	admins map[string]struct{}
}

// NewStatic creates an authorizer with the given admin ids.
func NewStatic(adminIDs ...string) *Static {
	a := &Static{admins: make(map[string]struct{}, len(adminIDs))}
	for _, id := range adminIDs {
		a.admins[id] = struct{}{}
	}
	return a
}

func (a *Static) isAdmin(callerID string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.admins[callerID]
	return ok
}

func (a *Static) RequireAdmin(ctx context.Context, callerID string) error {
	if !a.isAdmin(callerID) {
		return fmt.Errorf("%w: caller %q is not an admin", ErrForbidden, callerID)
	}
	return nil
}

func (a *Static) RequireOwnerOrAdmin(ctx context.Context, callerID, ownerID string) error {
	if callerID == ownerID || a.isAdmin(callerID) {
		return nil
	}
	return fmt.Errorf("%w: caller %q is neither owner nor admin", ErrForbidden, callerID)
}
