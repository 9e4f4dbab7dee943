package derive

import (
	"context"
	"fmt"
	"strings"

	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/ctxlog"
)

// ValidateHandlers performs a strict parity check between a catalog version
// and the registered derivation functions. Every computed variable in the
// manifest must have a handler, and every handler must correspond to a
// computed variable. A mismatch is a configuration error and must block
// activation of the catalog version.
func ValidateHandlers(ctx context.Context, r *Registry, v *catalog.Version) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, id := range v.IDs() {
		def, _ := v.Variable(id)
		if def.Resolution != catalog.ResolutionComputed {
			continue
		}
		if _, ok := r.handlers[id]; !ok {
			errs = append(errs, fmt.Sprintf("catalog declares computed variable %q but no derivation handler is registered", id))
		}
	}

	for _, id := range r.IDs() {
		def, ok := v.Variable(id)
		if !ok {
			errs = append(errs, fmt.Sprintf("derivation handler %q has no variable in the catalog", id))
			continue
		}
		if def.Resolution != catalog.ResolutionComputed {
			errs = append(errs, fmt.Sprintf("derivation handler %q is bound to a %s variable", id, def.Resolution))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("derivation parity check failed for catalog %s:\n- %s", v.Name, strings.Join(errs, "\n- "))
	}

	logger.Debug("Derivation parity check passed.", "version", v.Name, "handlers", len(r.handlers))
	return nil
}
