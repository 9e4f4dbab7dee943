package engine

import "fmt"

// MissingInputError reports a required input variable absent from the
// session. The wizard surface uses VariableID to tell the user exactly
// which field blocks pricing.
type MissingInputError struct {
	VariableID string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input %q", e.VariableID)
}

// ComputationError reports a derivation function failure, e.g. a division
// by a zero quantity. The evaluation aborts; no partial breakdown exists.
type ComputationError struct {
	VariableID string
	Err        error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computing %q: %v", e.VariableID, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

// UnresolvableOverrideError reports an overridable variable that fell
// through every level of precedence. Catalog validation makes this
// unreachable; if it occurs it is a defect, not a user error.
type UnresolvableOverrideError struct {
	VariableID string
	Err        error
}

func (e *UnresolvableOverrideError) Error() string {
	return fmt.Sprintf("unresolvable override for %q: %v", e.VariableID, e.Err)
}

func (e *UnresolvableOverrideError) Unwrap() error {
	return e.Err
}
