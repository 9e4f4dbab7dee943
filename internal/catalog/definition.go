// Package catalog defines the closed, versioned set of variable definitions
// that drive a price computation, and the registry that controls which
// version new sessions pin.
//
// A catalog version is immutable once added to the registry. Changing the
// catalog means adding a new version — never editing one that an existing
// session may already reference — so that any previously persisted
// breakdown can still be explained by the exact definitions it was computed
// against.
package catalog

import "github.com/vinetrade/pricecore/internal/value"

// Resolution classifies how a variable obtains its value during evaluation.
type Resolution int

const (
	// ResolutionInput variables are supplied by the session owner through
	// the wizard. Evaluation fails if a required input is absent.
	ResolutionInput Resolution = iota
	// ResolutionComputed variables are derived by a registered pure
	// function of their declared dependencies.
	ResolutionComputed
	// ResolutionOverridable variables resolve through the override
	// precedence chain (partner, organization, global default) unless the
	// session supplies an explicit value.
	ResolutionOverridable
)

// String returns the catalog keyword for the resolution mode.
func (r Resolution) String() string {
	switch r {
	case ResolutionInput:
		return "input"
	case ResolutionComputed:
		return "computed"
	case ResolutionOverridable:
		return "overridable"
	default:
		return "unknown"
	}
}

// VariableDefinition describes one variable of a catalog version. Definitions
// are immutable; loaders build them once and hand them to NewVersion.
type VariableDefinition struct {
	// ID is the stable identifier, unique within a catalog version.
	ID string
	// Type is the variant every value of this variable must carry.
	Type value.Type
	// Resolution classifies how the variable obtains its value.
	Resolution Resolution
	// DependsOn lists the variables a computed variable derives from.
	// It must be empty for input and overridable variables.
	DependsOn []string
	// Default is the global default for overridable variables. Required
	// for that class; nil otherwise.
	Default *value.Value
	// EnumValues is the closed set of allowed strings for enum variables.
	EnumValues []string
	// Description is free text for operators reading the manifest.
	Description string
}

// AcceptsInput reports whether a session may supply a value for this
// variable. Computed variables never accept session inputs.
func (d *VariableDefinition) AcceptsInput() bool {
	return d.Resolution != ResolutionComputed
}

// AllowsEnum reports whether s is a member of the declared enum set.
func (d *VariableDefinition) AllowsEnum(s string) bool {
	for _, allowed := range d.EnumValues {
		if allowed == s {
			return true
		}
	}
	return false
}
