// Package evalorder builds the dependency-respecting linear order a catalog
// version's variables are evaluated in.
//
// The order is a plain topological sort of the depends_on edges. Ties among
// variables with no relative ordering are broken by ascending variable id,
// which makes the order — and therefore every breakdown derived from it —
// deterministic and test-reproducible.
package evalorder

import (
	"context"
	"sort"

	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/ctxlog"
)

// Order is an immutable evaluation order for one catalog version: every
// variable appears strictly after all members of its depends_on set.
type Order struct {
	version string
	ids     []string
}

// Version returns the catalog version this order was built for.
func (o *Order) Version() string {
	return o.version
}

// IDs returns the ordered variable ids. The slice is shared; callers must
// not modify it.
func (o *Order) IDs() []string {
	return o.ids
}

// Build computes the evaluation order for a catalog version using Kahn's
// algorithm over the depends_on edges. Catalog validation has already
// rejected cyclic versions, but a cycle is still reported here rather than
// silently producing a short order.
func Build(ctx context.Context, v *catalog.Version) (*Order, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building evaluation order.", "version", v.Name, "variables", v.Len())

	// In-degree per variable and the reverse adjacency (dependents) list.
	indegree := make(map[string]int, v.Len())
	dependents := make(map[string][]string, v.Len())
	for _, id := range v.IDs() {
		def, _ := v.Variable(id)
		indegree[id] = len(def.DependsOn)
		for _, dep := range def.DependsOn {
			dependents[dep] = append(dependents[dep], id)
		}
	}

	// Ready set kept sorted ascending; taking the smallest id each round
	// is what makes the order deterministic.
	var ready []string
	for _, id := range v.IDs() {
		if indegree[id] == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	ids := make([]string, 0, v.Len())
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		ids = append(ids, id)

		released := false
		for _, dep := range dependents[id] {
			indegree[dep]--
			if indegree[dep] == 0 {
				ready = append(ready, dep)
				released = true
			}
		}
		if released {
			sort.Strings(ready)
		}
	}

	if len(ids) != v.Len() {
		// Variables left with a positive in-degree sit on a cycle; report
		// the exact path through the catalog's own cycle detector.
		if err := catalog.Validate(ctx, v); err != nil {
			return nil, err
		}
		return nil, &catalog.CycleError{Version: v.Name, Path: leftover(indegree)}
	}

	logger.Debug("Evaluation order built.", "version", v.Name)
	return &Order{version: v.Name, ids: ids}, nil
}

// leftover lists the unordered variables for the defensive error path where
// Kahn finds a cycle that re-validation somehow does not.
func leftover(indegree map[string]int) []string {
	var ids []string
	for id, deg := range indegree {
		if deg > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
