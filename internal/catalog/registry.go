package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/vinetrade/pricecore/internal/ctxlog"
)

// Registry holds every known catalog version and tracks which one is
// active. Versions are append-only: a registered version can never be
// replaced or removed, because existing sessions may reference it by name.
//
// The registry itself is mutable process-wide state and is mutex-guarded;
// the Version values it hands out are immutable and may be shared freely
// across concurrent evaluations without locking.
type Registry struct {
	mu       sync.RWMutex
	versions map[string]*Version
	active   string
}

// NewRegistry creates an empty registry with no active version.
func NewRegistry() *Registry {
	return &Registry{versions: make(map[string]*Version)}
}

// Add registers a new version. Registering a name twice is an error, even
// with identical content — a changed catalog must be a new version.
func (r *Registry) Add(v *Version) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.versions[v.Name]; exists {
		return fmt.Errorf("catalog version %q is already registered", v.Name)
	}
	r.versions[v.Name] = v
	return nil
}

// Activate validates the named version and makes it the version pinned by
// newly created sessions. A version that fails validation is never
// activated; the previously active version (if any) stays in effect.
func (r *Registry) Activate(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.versions[name]
	if !ok {
		return fmt.Errorf("cannot activate unknown catalog version %q", name)
	}
	if err := Validate(ctx, v); err != nil {
		return fmt.Errorf("cannot activate catalog version %q: %w", name, err)
	}

	r.active = name
	ctxlog.FromContext(ctx).Info("Catalog version activated.", "version", name, "variables", v.Len())
	return nil
}

// Active returns the currently active version. The second return is false
// when no version has been activated yet.
func (r *Registry) Active() (*Version, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.active == "" {
		return nil, false
	}
	return r.versions[r.active], true
}

// Version looks up a registered version by name, active or not. Sessions
// created under an older version resolve their pinned catalog here.
func (r *Registry) Version(name string) (*Version, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.versions[name]
	return v, ok
}
