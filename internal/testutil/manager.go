package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vinetrade/pricecore/internal/authz"
	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/engine"
	"github.com/vinetrade/pricecore/internal/evalorder"
	"github.com/vinetrade/pricecore/internal/lifecycle"
	"github.com/vinetrade/pricecore/internal/memstore"
	"github.com/vinetrade/pricecore/internal/overrides"
)

// Env is a fully wired lifecycle environment over the scenario catalog,
// with in-memory stores the test can reach into.
type Env struct {
	Manager   *lifecycle.Manager
	Store     *memstore.Store
	Overrides *overrides.MemStore
	Catalogs  *catalog.Registry
	// Admin is a caller id with the admin capability.
	Admin string
}

// NewEnv wires a manager over the scenario catalog and registry. The
// partner "P" belongs to organization "ORG"; the caller "admin" holds the
// admin capability.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	ctx := context.Background()

	registry := catalog.NewRegistry()
	require.NoError(t, registry.Add(ScenarioVersion(t)))
	require.NoError(t, registry.Activate(ctx, "test"))

	overrideStore := overrides.NewMemStore()
	directory := overrides.NewMemDirectory(map[string]string{"P": "ORG"})
	resolver := overrides.NewResolver(overrideStore, directory)
	eng := engine.New(evalorder.NewCache(), ScenarioRegistry(), resolver)

	store := memstore.New()
	auth := authz.NewStatic("admin")
	manager := lifecycle.NewManager(store, registry, eng, auth)

	return &Env{
		Manager:   manager,
		Store:     store,
		Overrides: overrideStore,
		Catalogs:  registry,
		Admin:     "admin",
	}
}
