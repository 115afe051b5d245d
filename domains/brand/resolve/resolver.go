package resolve

import (
	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/classpoint/brandkit/domains/brand/config"
	"github.com/classpoint/brandkit/domains/brand/registry"
)

// FallbackTenantID is the tenant served when nothing else identifies one.
// It must always be present in the shipped registry.
const FallbackTenantID = "crescent"

// Environment carries the development-time overrides read once at startup.
// Only the tenant id and the API base URL can be overridden this way.
type Environment struct {
	TenantID   string `env:"BRANDKIT_TENANT"`
	APIBaseURL string `env:"BRANDKIT_API_URL"`
}

// LoadEnvironment reads the overrides from process environment variables.
func LoadEnvironment() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, err
	}
	return e, nil
}

// Snapshot is one immutable resolution result. Gating and theme derivation
// both hang off a snapshot, so a caller can never mix decisions from two
// tenants; Generation changes on every resolution.
type Snapshot struct {
	Generation uuid.UUID
	TenantID   string
	Config     config.Resolved
}

// Resolver determines the active tenant and produces resolved configuration
// snapshots from the registry.
type Resolver struct {
	reg      *registry.Registry
	nativeID string
	environ  Environment
	logger   *zap.Logger
}

// New constructs a Resolver. nativeID is the tenant identity reported by the
// host platform at build/install time; empty means not reported.
func New(reg *registry.Registry, nativeID string, environ Environment, logger *zap.Logger) *Resolver {
	if reg == nil {
		panic("registry is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	return &Resolver{reg: reg, nativeID: nativeID, environ: environ, logger: logger}
}

// ActiveTenantID resolves the active tenant id: the native-reported identity
// first, then the environment override, then the fallback constant.
func (r *Resolver) ActiveTenantID() string {
	if r.nativeID != "" {
		return r.nativeID
	}
	if r.environ.TenantID != "" {
		return r.environ.TenantID
	}
	return FallbackTenantID
}

// Resolve produces a snapshot for the given tenant id; an empty id resolves
// the active tenant first. An unknown id never fails: it degrades to the
// fallback tenant's full configuration with a logged diagnostic, so the
// application is always configured.
func (r *Resolver) Resolve(id string) Snapshot {
	if id == "" {
		id = r.ActiveTenantID()
	}

	tenantID := id
	doc, ok := r.reg.Lookup(id)
	if !ok {
		r.logger.Warn("unknown tenant id, serving fallback tenant",
			zap.String("requested", id),
			zap.String("fallback", FallbackTenantID),
		)
		tenantID = FallbackTenantID
		doc, ok = r.reg.Lookup(FallbackTenantID)
		if !ok {
			// Registry without the fallback tenant; the default template
			// still keeps every screen configured.
			doc = config.Document{}
		}
	}

	cfg := config.Normalize(doc)
	if r.environ.APIBaseURL != "" {
		cfg.API.BaseURL = r.environ.APIBaseURL
	}

	return Snapshot{
		Generation: uuid.New(),
		TenantID:   tenantID,
		Config:     cfg,
	}
}
