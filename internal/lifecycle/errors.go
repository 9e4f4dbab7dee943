package lifecycle

import (
	"errors"
	"fmt"
)

// ErrStaleRevision is returned when the caller's expected revision no
// longer matches the stored session. The caller must refetch the session
// and retry; nothing was mutated.
var ErrStaleRevision = errors.New("stale revision")

// ErrSessionFinalized is returned on any attempt to mutate a finalized
// session. Finalized sessions are immutable; a correction means starting a
// new session.
var ErrSessionFinalized = errors.New("session is finalized")

// ErrSessionAbandoned is returned on any attempt to mutate an abandoned
// session.
var ErrSessionAbandoned = errors.New("session is abandoned")

// ErrNotComputed is returned when finalizing a session that has no
// successful evaluation at its current revision.
var ErrNotComputed = errors.New("session is not computed")

// ValidationError reports a malformed or out-of-range session input. It is
// recoverable: the wizard surfaces the specific variable for correction.
type ValidationError struct {
	VariableID string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input for %q: %s", e.VariableID, e.Reason)
}
