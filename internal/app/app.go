// Package app wires the pricing core together: logger, catalog manifests,
// derivation parity checks, stores and the lifecycle manager. It is the
// composition root used by the CLI and by the integration test harness.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vinetrade/pricecore/internal/authz"
	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/ctxlog"
	"github.com/vinetrade/pricecore/internal/derive"
	"github.com/vinetrade/pricecore/internal/engine"
	"github.com/vinetrade/pricecore/internal/evalorder"
	"github.com/vinetrade/pricecore/internal/hclcat"
	"github.com/vinetrade/pricecore/internal/lifecycle"
	"github.com/vinetrade/pricecore/internal/memstore"
	"github.com/vinetrade/pricecore/internal/overrides"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	catalogs  *catalog.Registry
	overrides *overrides.MemStore
	directory *overrides.MemDirectory
	auth      *authz.Static
	manager   *lifecycle.Manager
}

// NewApp constructs a fully initialized App: it loads every catalog
// manifest, registers the wine-case derivation handlers, validates and
// activates the configured version, and wires the in-memory store stack.
// Configuration failures are returned, not logged and swallowed — a bad
// catalog must block startup.
func NewApp(outW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	loader := hclcat.NewLoader()
	versions, err := loader.Load(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog manifests: %w", err)
	}

	registry := catalog.NewRegistry()
	for _, v := range versions {
		if err := registry.Add(v); err != nil {
			return nil, err
		}
	}
	logger.Debug("Catalog versions registered.", "count", len(versions))

	// Default to the highest version name; manifests are named v1, v2, ...
	active := cfg.ActiveVersion
	if active == "" {
		active = versions[len(versions)-1].Name
	}
	if err := registry.Activate(ctx, active); err != nil {
		return nil, err
	}

	deriveReg := derive.WineCase()
	activeVersion, _ := registry.Active()
	if err := derive.ValidateHandlers(ctx, deriveReg, activeVersion); err != nil {
		return nil, err
	}

	overrideStore := overrides.NewMemStore()
	directory := overrides.NewMemDirectory(cfg.PartnerOrgs)
	resolver := overrides.NewResolver(overrideStore, directory)

	eng := engine.New(evalorder.NewCache(), deriveReg, resolver)
	auth := authz.NewStatic(cfg.AdminIDs...)
	store := memstore.New()
	manager := lifecycle.NewManager(store, registry, eng, auth)

	return &App{
		outW:      outW,
		logger:    logger,
		catalogs:  registry,
		overrides: overrideStore,
		directory: directory,
		auth:      auth,
		manager:   manager,
	}, nil
}

// Context returns a background context carrying the app's logger.
func (a *App) Context() context.Context {
	return ctxlog.WithLogger(context.Background(), a.logger)
}

// Manager returns the session lifecycle manager.
func (a *App) Manager() *lifecycle.Manager {
	return a.manager
}

// Catalogs returns the catalog registry. This is primarily for testing.
func (a *App) Catalogs() *catalog.Registry {
	return a.catalogs
}

// Overrides returns the override store so the admin surface (and tests)
// can manage partner overrides and organization defaults.
func (a *App) Overrides() *overrides.MemStore {
	return a.overrides
}
