package catalog

import (
	"context"

	"github.com/vinetrade/pricecore/internal/ctxlog"
	"github.com/vinetrade/pricecore/internal/value"
)

// Validate checks the structural invariants of a catalog version. A version
// that fails validation must never be activated.
//
// Checked invariants:
//   - every dependency target exists
//   - input and overridable variables declare no dependencies
//   - overridable variables carry a type-correct global default
//   - enum variables declare a non-empty value set
//   - the dependency relation is acyclic (reported with the full cycle path)
//   - the designated total variable exists, is computed and currency-typed
func Validate(ctx context.Context, v *Version) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Validating catalog version.", "version", v.Name, "variables", v.Len())

	for _, id := range v.ids {
		def := v.vars[id]
		if err := validateDefinition(v, def); err != nil {
			return err
		}
	}

	if err := detectCycles(v); err != nil {
		return err
	}

	total, ok := v.vars[v.TotalVariable]
	if !ok {
		return &DefinitionError{Version: v.Name, VariableID: v.TotalVariable, Reason: "total variable is not defined"}
	}
	if total.Resolution != ResolutionComputed {
		return &DefinitionError{Version: v.Name, VariableID: v.TotalVariable, Reason: "total variable must be computed"}
	}
	if total.Type != value.TypeCurrency {
		return &DefinitionError{Version: v.Name, VariableID: v.TotalVariable, Reason: "total variable must be currency-typed"}
	}

	logger.Debug("Catalog validation passed.", "version", v.Name)
	return nil
}

func validateDefinition(v *Version, def *VariableDefinition) error {
	fail := func(reason string) error {
		return &DefinitionError{Version: v.Name, VariableID: def.ID, Reason: reason}
	}

	if def.ID == "" {
		return fail("empty variable id")
	}

	for _, dep := range def.DependsOn {
		if dep == def.ID {
			return fail("variable depends on itself")
		}
		if _, ok := v.vars[dep]; !ok {
			return fail("depends on undefined variable " + dep)
		}
	}

	switch def.Resolution {
	case ResolutionInput:
		if len(def.DependsOn) > 0 {
			return fail("input variable must not declare dependencies")
		}
		if def.Default != nil {
			return fail("input variable must not declare a default")
		}
	case ResolutionOverridable:
		if len(def.DependsOn) > 0 {
			return fail("overridable variable must not declare dependencies")
		}
		if def.Default == nil {
			return fail("overridable variable requires a global default")
		}
		if err := def.Default.CheckType(def.Type); err != nil {
			return fail("global default has wrong type: " + err.Error())
		}
	case ResolutionComputed:
		if def.Default != nil {
			return fail("computed variable must not declare a default")
		}
	default:
		return fail("unknown resolution mode")
	}

	if def.Type == value.TypeEnum && len(def.EnumValues) == 0 {
		return fail("enum variable declares no values")
	}
	if def.Type != value.TypeEnum && len(def.EnumValues) > 0 {
		return fail("only enum variables may declare values")
	}

	return nil
}

// detectCycles runs a depth-first search over the depends_on edges with an
// explicit recursion stack, so on a back-edge the whole cycle path can be
// reported, not just the node it was detected at.
func detectCycles(v *Version) error {
	visited := make(map[string]bool, len(v.vars))
	onStack := make(map[string]bool, len(v.vars))
	var stack []string

	var visit func(id string) *CycleError
	visit = func(id string) *CycleError {
		visited[id] = true
		onStack[id] = true
		stack = append(stack, id)

		for _, dep := range v.vars[id].DependsOn {
			if onStack[dep] {
				// Back-edge: slice the stack from the first occurrence of
				// dep to get every variable participating in the cycle.
				start := 0
				for i, s := range stack {
					if s == dep {
						start = i
						break
					}
				}
				path := append(append([]string{}, stack[start:]...), dep)
				return &CycleError{Version: v.Name, Path: path}
			}
			if !visited[dep] {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		stack = stack[:len(stack)-1]
		onStack[id] = false
		return nil
	}

	// Iterate ids in sorted order so the reported cycle is deterministic.
	for _, id := range v.ids {
		if !visited[id] {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}
