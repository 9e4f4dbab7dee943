package overrides

import (
	"context"
	"fmt"

	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/value"
)

// UnknownVariableError reports a resolution attempt against a variable that
// is not overridable. This is a programmer or configuration error — catalog
// validation keeps it out of the evaluation path — so it surfaces as a
// defect, never as a user-facing failure.
type UnknownVariableError struct {
	VariableID string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("variable %q is not overridable in the active catalog", e.VariableID)
}

// Resolver applies override precedence for overridable variables. It is a
// pure reader over its store and directory; it never writes.
type Resolver struct {
	store Store
	dir   Directory
}

// NewResolver creates a resolver over the given store and directory.
func NewResolver(store Store, dir Directory) *Resolver {
	return &Resolver{store: store, dir: dir}
}

// Resolve returns the applicable value for an overridable variable, with
// the source that produced it. Precedence is strict and total: partner
// override, then the partner's organization default, then the variable's
// catalog-defined global default. Because validation guarantees every
// overridable variable carries a global default, resolution never falls
// through for that class.
//
// partnerID may be empty (a private client with no partner), which skips
// the partner and organization levels.
func (r *Resolver) Resolve(ctx context.Context, def *catalog.VariableDefinition, partnerID string) (value.Value, value.Source, error) {
	if def.Resolution != catalog.ResolutionOverridable {
		return value.Value{}, value.Source{}, &UnknownVariableError{VariableID: def.ID}
	}

	if partnerID != "" {
		v, ok, err := r.store.PartnerOverride(ctx, partnerID, def.ID)
		if err != nil {
			return value.Value{}, value.Source{}, fmt.Errorf("reading partner override for %q: %w", def.ID, err)
		}
		if ok {
			if err := v.CheckType(def.Type); err != nil {
				return value.Value{}, value.Source{}, fmt.Errorf("partner override for %q: %w", def.ID, err)
			}
			return v, value.OverrideSource(partnerID), nil
		}

		orgID, found, err := r.dir.OrganizationOf(ctx, partnerID)
		if err != nil {
			return value.Value{}, value.Source{}, fmt.Errorf("looking up organization of partner %q: %w", partnerID, err)
		}
		if found {
			v, ok, err := r.store.OrgDefault(ctx, orgID, def.ID)
			if err != nil {
				return value.Value{}, value.Source{}, fmt.Errorf("reading org default for %q: %w", def.ID, err)
			}
			if ok {
				if err := v.CheckType(def.Type); err != nil {
					return value.Value{}, value.Source{}, fmt.Errorf("org default for %q: %w", def.ID, err)
				}
				return v, value.OrgDefaultSource(), nil
			}
		}
	}

	if def.Default == nil {
		// Catalog validation makes this unreachable; surfacing it keeps
		// the defect loud if an unvalidated version ever sneaks in.
		return value.Value{}, value.Source{}, &UnknownVariableError{VariableID: def.ID}
	}
	return *def.Default, value.GlobalDefaultSource(), nil
}
