package catalog

import (
	"fmt"
	"strings"
)

// CycleError reports a circular dependency among variable definitions. Path
// holds every variable in the cycle, in dependency order, with the starting
// variable repeated at the end.
type CycleError struct {
	Version string
	Path    []string
}

// Error renders the full cycle path for diagnostics, e.g.
// "catalog v2: dependency cycle: a -> b -> c -> a".
func (e *CycleError) Error() string {
	return fmt.Sprintf("catalog %s: dependency cycle: %s", e.Version, strings.Join(e.Path, " -> "))
}

// DefinitionError reports a structurally invalid variable definition. Like
// CycleError it is a configuration error: it must block activation of the
// catalog version and never surfaces to an end user.
type DefinitionError struct {
	Version    string
	VariableID string
	Reason     string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("catalog %s: variable %q: %s", e.Version, e.VariableID, e.Reason)
}
