package app

import (
	"context"
	"fmt"

	"github.com/vinetrade/pricecore/internal/lifecycle"
	"github.com/vinetrade/pricecore/internal/value"
)

// Validate reports the loaded catalog versions. Loading and activation
// already happened in NewApp; reaching this point means every manifest
// parsed, the active version is acyclic and the derivation handlers match.
func (a *App) Validate(ctx context.Context) error {
	active, ok := a.catalogs.Active()
	if !ok {
		return fmt.Errorf("no active catalog version")
	}
	fmt.Fprintf(a.outW, "catalog ok: active version %s (%d variables, %s)\n",
		active.Name, active.Len(), active.Currency)
	return nil
}

// Quote prices a one-off order: it creates a throwaway session for the
// owner, commits the given inputs as one change set, and prints the
// resulting breakdown.
func (a *App) Quote(ctx context.Context, ownerID, partnerID string, rawInputs map[string]string) error {
	active, ok := a.catalogs.Active()
	if !ok {
		return fmt.Errorf("no active catalog version")
	}

	changes := make([]lifecycle.InputChange, 0, len(rawInputs))
	for id, raw := range rawInputs {
		def, found := active.Variable(id)
		if !found {
			return fmt.Errorf("unknown variable %q", id)
		}
		v, err := value.Parse(def.Type, raw)
		if err != nil {
			return err
		}
		changes = append(changes, lifecycle.InputChange{VariableID: id, Value: &v})
	}

	s, err := a.manager.CreateSession(ctx, ownerID, ownerID, partnerID)
	if err != nil {
		return err
	}
	b, err := a.manager.ApplyInputChange(ctx, ownerID, s.ID, s.Revision, changes)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "session %s (catalog %s, revision %d)\n", s.ID, s.CatalogVersion, b.Revision)
	for _, line := range b.Lines {
		fmt.Fprintf(a.outW, "  %-16s %12s  (%s)\n", line.VariableID, line.Value, line.Source)
	}
	fmt.Fprintf(a.outW, "total: %s %s\n", b.TotalPrice.StringFixedBank(2), b.Currency)
	return nil
}
