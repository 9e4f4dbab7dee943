// Package derive holds the registry of derivation functions for computed
// variables.
//
// The catalog manifest declares WHICH variables are computed and what they
// depend on; the Go code registered here defines HOW they are computed.
// ValidateHandlers enforces strict parity between the two at activation
// time, so a manifest/code mismatch is caught at startup rather than during
// a pricing request.
package derive

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vinetrade/pricecore/internal/value"
)

// Inputs carries the already-resolved values of a computed variable's
// declared dependencies, keyed by variable id.
type Inputs map[string]value.Value

// Decimal returns the numeric payload of a dependency. Derivation functions
// use it for the common case where dependencies are numeric.
func (in Inputs) Decimal(id string) (decimal.Decimal, error) {
	v, ok := in[id]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("dependency %q was not resolved", id)
	}
	d, err := v.Decimal()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("dependency %q: %w", id, err)
	}
	return d, nil
}

// Func is a pure derivation function for one computed variable. It receives
// only the variable's declared dependencies and must not perform I/O; any
// returned error aborts the whole evaluation.
type Func func(in Inputs) (value.Value, error)

// Registry maps computed variable ids to their derivation functions.
type Registry struct {
	handlers map[string]Func
}

// NewRegistry creates an empty derivation registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Func)}
}

// Register binds a derivation function to a computed variable id.
// Registering the same id twice panics: that is a programmer error, the
// same class of mistake as a duplicate case in a switch.
func (r *Registry) Register(variableID string, fn Func) {
	if _, exists := r.handlers[variableID]; exists {
		panic(fmt.Sprintf("derive: handler for %q registered twice", variableID))
	}
	r.handlers[variableID] = fn
}

// Lookup returns the derivation function for a variable id.
func (r *Registry) Lookup(variableID string) (Func, bool) {
	fn, ok := r.handlers[variableID]
	return fn, ok
}

// IDs returns the registered variable ids in ascending order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
