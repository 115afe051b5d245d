// Package feature answers gating questions for the active tenant: which
// modules exist and which cross-cutting capabilities are on. Decisions are a
// pure function of the resolved configuration, so two queries against the
// same Gate always agree.
package feature

import (
	"github.com/classpoint/brandkit/domains/brand/config"
)

// Gate exposes module and capability queries over one resolved config.
type Gate struct {
	cfg config.Resolved
}

// NewGate constructs a Gate for a resolved configuration.
func NewGate(cfg config.Resolved) Gate {
	return Gate{cfg: cfg}
}

// Enabled reports whether the module is available for the tenant. A module
// missing from the map reads as disabled; normalization fills the full
// closed set, so that branch is defensive only.
func (g Gate) Enabled(m config.Module) bool {
	record, ok := g.cfg.Features.Modules[m]
	if !ok {
		return false
	}
	return record.Enabled
}

// ModuleConfig returns the module's full record, or nil when the module is
// disabled or unknown. Callers must not branch on sub-fields of a disabled
// module.
func (g Gate) ModuleConfig(m config.Module) *config.ModuleConfig {
	record, ok := g.cfg.Features.Modules[m]
	if !ok || !record.Enabled {
		return nil
	}
	return &record
}

// EnabledModules returns the enabled modules in the closed set's stable
// order, for navigation composition.
func (g Gate) EnabledModules() []config.Module {
	out := make([]config.Module, 0, len(g.cfg.Features.Modules))
	for _, m := range config.AllModules() {
		if g.Enabled(m) {
			out = append(out, m)
		}
	}
	return out
}

// NotificationsEnabled reports whether push notifications are on.
func (g Gate) NotificationsEnabled() bool {
	return g.cfg.Features.Notifications
}

// OfflineEnabled reports whether offline mode is on.
func (g Gate) OfflineEnabled() bool {
	return g.cfg.Features.Offline
}

// DarkModeAvailable reports whether the tenant allows dark mode at all.
func (g Gate) DarkModeAvailable() bool {
	return g.cfg.Features.DarkMode
}
