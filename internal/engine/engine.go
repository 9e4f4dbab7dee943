// Package engine implements the evaluation walk that turns a session's
// inputs into a fully-sourced price breakdown.
//
// Evaluation is pure, synchronous computation: all I/O (loading the
// session, catalog and overrides) happens before or at the edges of the
// walk, the walk itself is strictly sequential in dependency order, and a
// failed evaluation returns nothing — a partially computed breakdown is
// never produced.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vinetrade/pricecore/internal/breakdown"
	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/ctxlog"
	"github.com/vinetrade/pricecore/internal/derive"
	"github.com/vinetrade/pricecore/internal/evalorder"
	"github.com/vinetrade/pricecore/internal/overrides"
	"github.com/vinetrade/pricecore/internal/session"
	"github.com/vinetrade/pricecore/internal/value"
)

var errNoHandler = errors.New("no derivation handler registered")

// Engine evaluates sessions against their pinned catalog version.
type Engine struct {
	orders   *evalorder.Cache
	registry *derive.Registry
	resolver *overrides.Resolver
	now      func() time.Time
}

// New creates an engine. The evaluation-order cache is shared across all
// evaluations; catalog versions are immutable so cached orders never go
// stale.
func New(orders *evalorder.Cache, registry *derive.Registry, resolver *overrides.Resolver) *Engine {
	return &Engine{orders: orders, registry: registry, resolver: resolver, now: time.Now}
}

// Evaluate computes a breakdown for the session's current inputs. It reads
// the session and never mutates it; the returned breakdown is an
// independent artifact tagged with the session's id and revision.
//
// For each variable, in evaluation order:
//   - input: the session must supply a value (MissingInputError otherwise)
//   - overridable: an explicit session input wins; otherwise the override
//     resolver's precedence chain applies
//   - computed: the registered derivation function runs over the
//     already-resolved dependency values
func (e *Engine) Evaluate(ctx context.Context, s *session.Session, v *catalog.Version) (*breakdown.Breakdown, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Evaluating session.", "session", s.ID, "revision", s.Revision, "catalog", v.Name)

	order, err := e.orders.Get(ctx, v)
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]value.Value, v.Len())
	lines := make([]breakdown.Line, 0, v.Len())

	for _, id := range order.IDs() {
		def, _ := v.Variable(id)

		var (
			val value.Value
			src value.Source
		)
		switch def.Resolution {
		case catalog.ResolutionInput:
			input, ok := s.Inputs[id]
			if !ok {
				return nil, &MissingInputError{VariableID: id}
			}
			val, src = input, value.InputSource()

		case catalog.ResolutionOverridable:
			if input, ok := s.Inputs[id]; ok {
				// A session-level input always wins over partner, org
				// and global values.
				val, src = input, value.InputSource()
				break
			}
			rv, rs, rerr := e.resolver.Resolve(ctx, def, s.PartnerID)
			if rerr != nil {
				return nil, &UnresolvableOverrideError{VariableID: id, Err: rerr}
			}
			val, src = rv, rs

		case catalog.ResolutionComputed:
			fn, ok := e.registry.Lookup(id)
			if !ok {
				// Parity validation at activation makes this unreachable.
				return nil, &ComputationError{VariableID: id, Err: errNoHandler}
			}
			deps := make(derive.Inputs, len(def.DependsOn))
			for _, dep := range def.DependsOn {
				deps[dep] = resolved[dep]
			}
			cv, cerr := fn(deps)
			if cerr != nil {
				return nil, &ComputationError{VariableID: id, Err: cerr}
			}
			if terr := cv.CheckType(def.Type); terr != nil {
				return nil, &ComputationError{VariableID: id, Err: terr}
			}
			val, src = cv, value.ComputedSource()
		}

		resolved[id] = val
		lines = append(lines, breakdown.Line{VariableID: id, Value: val, Source: src})
	}

	total, err := resolved[v.TotalVariable].Decimal()
	if err != nil {
		// Validation pins the total variable to currency type.
		return nil, &ComputationError{VariableID: v.TotalVariable, Err: err}
	}

	b := &breakdown.Breakdown{
		ID:         uuid.New(),
		SessionID:  s.ID,
		Revision:   s.Revision,
		Lines:      lines,
		TotalPrice: total,
		Currency:   v.Currency,
		ComputedAt: e.now(),
	}
	logger.Debug("Evaluation complete.", "session", s.ID, "total", b.TotalPrice, "currency", b.Currency)
	return b, nil
}
