// Package runtime composes the brand engine behind one read-only query
// surface. Navigation, styling and the auth flow talk to an Engine; the
// engine itself derives nothing — it wires the registry, resolver, feature
// gate and theme derivation together and keeps their views consistent.
package runtime

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/classpoint/brandkit/domains/brand/config"
	"github.com/classpoint/brandkit/domains/brand/feature"
	"github.com/classpoint/brandkit/domains/brand/registry"
	"github.com/classpoint/brandkit/domains/brand/resolve"
	"github.com/classpoint/brandkit/domains/brand/theme"
	"github.com/classpoint/brandkit/platform/go/logging"
)

// Options carries the engine's dependencies.
type Options struct {
	// Registry holds the tenant documents. Required.
	Registry *registry.Registry
	// NativeTenantID is the tenant identity reported by the host platform;
	// empty means not reported.
	NativeTenantID string
	// Env carries the startup environment overrides.
	Env resolve.Environment
	// SystemDarkPref reports the host system's dark-mode preference; nil
	// means always light.
	SystemDarkPref func() bool
	// Logger is required.
	Logger *zap.Logger
}

// Engine is the runtime accessor surface. All queries read from the current
// snapshot under a shared lock, so gating decisions and colors always come
// from the same tenant resolution.
type Engine struct {
	mu       sync.RWMutex
	reg      *registry.Registry
	resolver *resolve.Resolver
	logger   *zap.Logger
	dark     *theme.Controller

	snap resolve.Snapshot
	gate feature.Gate
}

// New resolves the active tenant and returns a ready Engine.
func New(opts Options) *Engine {
	if opts.Registry == nil {
		panic("registry is required")
	}
	if opts.Logger == nil {
		panic("logger is required")
	}

	resolver := resolve.New(opts.Registry, opts.NativeTenantID, opts.Env, opts.Logger)
	snap := resolver.Resolve("")

	e := &Engine{
		reg:      opts.Registry,
		resolver: resolver,
		logger:   opts.Logger,
		dark:     theme.NewController(snap.Config.Features.DarkMode, opts.SystemDarkPref),
		snap:     snap,
		gate:     feature.NewGate(snap.Config),
	}

	logging.WithTenant(opts.Logger, snap.TenantID).Info("brand engine resolved",
		zap.String("generation", snap.Generation.String()),
	)

	return e
}

// TenantID returns the resolved tenant id.
func (e *Engine) TenantID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap.TenantID
}

// Generation identifies the current resolution; it changes on every Reload.
func (e *Engine) Generation() uuid.UUID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap.Generation
}

// Config returns the resolved configuration snapshot.
func (e *Engine) Config() config.Resolved {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap.Config
}

// ModuleEnabled reports whether a module exists for the tenant.
func (e *Engine) ModuleEnabled(m config.Module) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gate.Enabled(m)
}

// ModuleConfig returns a module's record, nil when disabled.
func (e *Engine) ModuleConfig(m config.Module) *config.ModuleConfig {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gate.ModuleConfig(m)
}

// EnabledModules returns the enabled modules in stable order.
func (e *Engine) EnabledModules() []config.Module {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gate.EnabledModules()
}

// NotificationsEnabled reports whether push notifications are on.
func (e *Engine) NotificationsEnabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gate.NotificationsEnabled()
}

// OfflineEnabled reports whether offline mode is on.
func (e *Engine) OfflineEnabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gate.OfflineEnabled()
}

// DarkModeAvailable reports whether the tenant allows dark mode.
func (e *Engine) DarkModeAvailable() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gate.DarkModeAvailable()
}

// DarkModeActive reports whether dark mode is effectively on right now.
func (e *Engine) DarkModeActive() bool {
	return e.dark.Effective()
}

// ToggleDarkMode flips dark mode; no-op when the tenant disallows it.
func (e *Engine) ToggleDarkMode() {
	e.dark.Toggle()
}

// SetDarkMode sets an explicit dark-mode override; no-op when the tenant
// disallows it.
func (e *Engine) SetDarkMode(on bool) {
	e.dark.SetExplicit(on)
}

// Colors returns the derived color set for the current tenant and dark-mode
// state. Recomputed on every call; it is a view, not stored state.
func (e *Engine) Colors() theme.ColorSet {
	e.mu.RLock()
	base := e.snap.Config.Theme.Colors
	e.mu.RUnlock()
	return theme.DeriveColors(base, e.dark.Effective())
}

// Register adds or replaces a tenant document in the registry. It does not
// re-resolve; call Reload to switch the engine onto the new document.
func (e *Engine) Register(id string, doc config.Document) {
	e.reg.Register(id, doc)
}

// Reload re-resolves the engine onto the given tenant id (empty means the
// active id) and swaps the snapshot atomically. The dark-mode override is
// kept; only its capability gate tracks the new tenant.
func (e *Engine) Reload(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.snap = e.resolver.Resolve(id)
	e.gate = feature.NewGate(e.snap.Config)
	e.dark.SetAvailable(e.snap.Config.Features.DarkMode)

	logging.WithTenant(e.logger, e.snap.TenantID).Info("brand engine reloaded",
		zap.String("generation", e.snap.Generation.String()),
	)
}
