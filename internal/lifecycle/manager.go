// Package lifecycle implements the session lifecycle manager: the single
// owner of pricing-session mutation.
//
// The manager orchestrates the wizard's committed changes, enforces the
// session state machine (draft, computed, finalized, abandoned), validates
// inputs against the catalog, invokes the evaluation engine, and persists
// sessions and breakdowns through the store capability. Optimistic
// concurrency is enforced twice: a fast check against the loaded revision,
// and authoritatively by the store's conditional write — so two concurrent
// commits against the same expected revision can never both succeed.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vinetrade/pricecore/internal/authz"
	"github.com/vinetrade/pricecore/internal/breakdown"
	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/ctxlog"
	"github.com/vinetrade/pricecore/internal/engine"
	"github.com/vinetrade/pricecore/internal/session"
	"github.com/vinetrade/pricecore/internal/sessionstore"
	"github.com/vinetrade/pricecore/internal/value"
)

// InputChange is one committed wizard edit. A nil Value removes the
// session's input for the variable, reverting an overridable variable to
// its resolver precedence.
type InputChange struct {
	VariableID string
	Value      *value.Value
}

// Manager owns all session mutation. Construct one per process and share
// it; all state lives in the injected capabilities.
type Manager struct {
	store    sessionstore.Store
	catalogs *catalog.Registry
	engine   *engine.Engine
	auth     authz.Authorizer
	now      func() time.Time
}

// NewManager wires a lifecycle manager from its capabilities.
func NewManager(store sessionstore.Store, catalogs *catalog.Registry, eng *engine.Engine, auth authz.Authorizer) *Manager {
	return &Manager{store: store, catalogs: catalogs, engine: eng, auth: auth, now: time.Now}
}

// CreateSession creates a draft session at revision zero, pinned to the
// currently active catalog version. Callers may create sessions for
// themselves; admins may create them for anyone.
func (m *Manager) CreateSession(ctx context.Context, callerID, ownerID, partnerID string) (*session.Session, error) {
	if err := m.auth.RequireOwnerOrAdmin(ctx, callerID, ownerID); err != nil {
		return nil, err
	}

	active, ok := m.catalogs.Active()
	if !ok {
		return nil, errors.New("no active catalog version")
	}

	s := session.New(ownerID, partnerID, active.Name, m.now())
	if err := m.store.CreateSession(ctx, s); err != nil {
		return nil, fmt.Errorf("persisting new session: %w", err)
	}

	ctxlog.FromContext(ctx).Info("Session created.",
		"session", s.ID, "owner", ownerID, "partner", partnerID, "catalog", active.Name)
	return s, nil
}

// GetSession loads a session for its owner or an admin.
func (m *Manager) GetSession(ctx context.Context, callerID string, id uuid.UUID) (*session.Session, error) {
	s, err := m.store.LoadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.auth.RequireOwnerOrAdmin(ctx, callerID, s.OwnerID); err != nil {
		return nil, err
	}
	return s, nil
}

// LatestBreakdown returns the most recent breakdown for a session, or nil
// when the session has never evaluated successfully.
func (m *Manager) LatestBreakdown(ctx context.Context, callerID string, id uuid.UUID) (*breakdown.Breakdown, error) {
	if _, err := m.GetSession(ctx, callerID, id); err != nil {
		return nil, err
	}
	return m.store.LatestBreakdown(ctx, id)
}

// BreakdownHistory returns every breakdown of a session in append order.
func (m *Manager) BreakdownHistory(ctx context.Context, callerID string, id uuid.UUID) ([]*breakdown.Breakdown, error) {
	if _, err := m.GetSession(ctx, callerID, id); err != nil {
		return nil, err
	}
	return m.store.BreakdownHistory(ctx, id)
}

// ApplyInputChange commits a set of wizard edits against the revision the
// caller last observed.
//
// On acceptance the changes are validated against their declared value
// types, merged into the session's inputs, the revision increments by
// exactly one, and the session re-evaluates. A successful evaluation
// persists a new breakdown and moves the session to computed. A failed
// evaluation (e.g. a still-missing required input) keeps the session in
// draft — the accepted edit and revision bump persist, the evaluation
// error is returned so the wizard can name the offending variable.
func (m *Manager) ApplyInputChange(ctx context.Context, callerID string, id uuid.UUID, expectedRevision int64, changes []InputChange) (*breakdown.Breakdown, error) {
	logger := ctxlog.FromContext(ctx)

	s, err := m.store.LoadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.auth.RequireOwnerOrAdmin(ctx, callerID, s.OwnerID); err != nil {
		return nil, err
	}
	if err := m.checkMutable(s); err != nil {
		return nil, err
	}
	if s.Revision != expectedRevision {
		return nil, fmt.Errorf("%w: session is at revision %d, caller expected %d",
			ErrStaleRevision, s.Revision, expectedRevision)
	}

	v, ok := m.catalogs.Version(s.CatalogVersion)
	if !ok {
		// The registry is append-only, so a pinned version can only be
		// missing if the deployment dropped a catalog file.
		return nil, fmt.Errorf("session pins unknown catalog version %q", s.CatalogVersion)
	}

	for _, change := range changes {
		if err := validateChange(v, change); err != nil {
			return nil, err
		}
	}
	for _, change := range changes {
		if change.Value == nil {
			delete(s.Inputs, change.VariableID)
		} else {
			s.Inputs[change.VariableID] = *change.Value
		}
	}

	s.Revision++
	s.UpdatedAt = m.now()

	b, evalErr := m.engine.Evaluate(ctx, s, v)
	if evalErr != nil {
		s.Status = session.StatusDraft
		if saveErr := m.saveCAS(ctx, s, expectedRevision); saveErr != nil {
			return nil, saveErr
		}
		logger.Debug("Input change committed; evaluation pending.",
			"session", s.ID, "revision", s.Revision, "reason", evalErr)
		return nil, fmt.Errorf("evaluation failed: %w", evalErr)
	}

	s.Status = session.StatusComputed
	if err := m.saveCAS(ctx, s, expectedRevision); err != nil {
		return nil, err
	}
	if err := m.store.AppendBreakdown(ctx, b); err != nil {
		return nil, fmt.Errorf("persisting breakdown: %w", err)
	}

	logger.Info("Session evaluated.",
		"session", s.ID, "revision", s.Revision, "total", b.TotalPrice, "currency", b.Currency)
	return b, nil
}

// Finalize freezes a computed session. Admin only; terminal. The revision
// does not change — finalization is not an input edit.
func (m *Manager) Finalize(ctx context.Context, callerID string, id uuid.UUID, expectedRevision int64) error {
	if err := m.auth.RequireAdmin(ctx, callerID); err != nil {
		return err
	}

	s, err := m.store.LoadSession(ctx, id)
	if err != nil {
		return err
	}
	if err := m.checkMutable(s); err != nil {
		return err
	}
	if s.Status != session.StatusComputed {
		return fmt.Errorf("%w: status is %s", ErrNotComputed, s.Status)
	}
	if s.Revision != expectedRevision {
		return fmt.Errorf("%w: session is at revision %d, caller expected %d",
			ErrStaleRevision, s.Revision, expectedRevision)
	}

	s.Status = session.StatusFinalized
	s.UpdatedAt = m.now()
	if err := m.saveCAS(ctx, s, expectedRevision); err != nil {
		return err
	}

	ctxlog.FromContext(ctx).Info("Session finalized.", "session", s.ID, "revision", s.Revision)
	return nil
}

// Abandon soft-deletes a draft or computed session. Terminal.
func (m *Manager) Abandon(ctx context.Context, callerID string, id uuid.UUID, expectedRevision int64) error {
	s, err := m.store.LoadSession(ctx, id)
	if err != nil {
		return err
	}
	if err := m.auth.RequireOwnerOrAdmin(ctx, callerID, s.OwnerID); err != nil {
		return err
	}
	if err := m.checkMutable(s); err != nil {
		return err
	}
	if s.Revision != expectedRevision {
		return fmt.Errorf("%w: session is at revision %d, caller expected %d",
			ErrStaleRevision, s.Revision, expectedRevision)
	}

	s.Status = session.StatusAbandoned
	s.UpdatedAt = m.now()
	if err := m.saveCAS(ctx, s, expectedRevision); err != nil {
		return err
	}

	ctxlog.FromContext(ctx).Info("Session abandoned.", "session", s.ID)
	return nil
}

// checkMutable rejects mutation of terminal sessions with the state's
// specific error.
func (m *Manager) checkMutable(s *session.Session) error {
	switch s.Status {
	case session.StatusFinalized:
		return fmt.Errorf("%w: %s", ErrSessionFinalized, s.ID)
	case session.StatusAbandoned:
		return fmt.Errorf("%w: %s", ErrSessionAbandoned, s.ID)
	default:
		return nil
	}
}

// saveCAS performs the store's conditional write and translates the typed
// store conflict into the lifecycle-level stale-revision failure, so
// callers see one error regardless of whether the fast check or the store
// caught the race.
func (m *Manager) saveCAS(ctx context.Context, s *session.Session, expectedRevision int64) error {
	err := m.store.SaveSession(ctx, s, expectedRevision)
	if err == nil {
		return nil
	}
	if errors.Is(err, sessionstore.ErrRevisionConflict) {
		return fmt.Errorf("%w: %v", ErrStaleRevision, err)
	}
	return fmt.Errorf("persisting session: %w", err)
}

// validateChange checks one edit against the catalog before it is merged.
func validateChange(v *catalog.Version, change InputChange) error {
	def, ok := v.Variable(change.VariableID)
	if !ok {
		return &ValidationError{VariableID: change.VariableID, Reason: "unknown variable"}
	}
	if !def.AcceptsInput() {
		return &ValidationError{VariableID: change.VariableID, Reason: "computed variables do not accept inputs"}
	}
	if change.Value == nil {
		// Removal needs no further checks.
		return nil
	}

	val := *change.Value
	if err := val.CheckType(def.Type); err != nil {
		return &ValidationError{VariableID: change.VariableID, Reason: err.Error()}
	}

	switch def.Type {
	case value.TypeEnum:
		s, _ := val.Enum()
		if !def.AllowsEnum(s) {
			return &ValidationError{VariableID: change.VariableID, Reason: fmt.Sprintf("%q is not an allowed value", s)}
		}
	case value.TypeInteger:
		d, _ := val.Decimal()
		if d.IsNegative() {
			return &ValidationError{VariableID: change.VariableID, Reason: "quantity must not be negative"}
		}
	}
	return nil
}
