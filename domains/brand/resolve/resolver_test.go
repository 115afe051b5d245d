package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/classpoint/brandkit/domains/brand/config"
	"github.com/classpoint/brandkit/domains/brand/registry"
)

func seededRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.NewWithSeeds()
	require.NoError(t, err)
	return r
}

func TestActiveTenantIDOrder(t *testing.T) {
	reg := seededRegistry(t)
	logger := zap.NewNop()

	cases := []struct {
		name     string
		nativeID string
		environ  Environment
		want     string
	}{
		{name: "native wins", nativeID: "stjoseph", environ: Environment{TenantID: "greenvalley"}, want: "stjoseph"},
		{name: "env override when no native", environ: Environment{TenantID: "greenvalley"}, want: "greenvalley"},
		{name: "fallback when nothing set", want: FallbackTenantID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := New(reg, tc.nativeID, tc.environ, logger)
			require.Equal(t, tc.want, r.ActiveTenantID())
		})
	}
}

func TestResolveActiveTenant(t *testing.T) {
	r := New(seededRegistry(t), "stjoseph", Environment{}, zap.NewNop())

	snap := r.Resolve("")
	require.Equal(t, "stjoseph", snap.TenantID)
	require.Equal(t, "St. Joseph's Convent School", snap.Config.Name)
	require.Equal(t, config.AuthPassword, snap.Config.Auth.Mode)
	require.False(t, snap.Config.Features.DarkMode)
}

func TestResolveUnknownTenantDegradesToFallback(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)
	r := New(seededRegistry(t), "", Environment{}, logger)

	unknown := r.Resolve("nonexistent")
	fallback := r.Resolve(FallbackTenantID)

	require.Equal(t, FallbackTenantID, unknown.TenantID)
	require.Equal(t, fallback.Config, unknown.Config)
	require.Equal(t, 1, logs.FilterMessage("unknown tenant id, serving fallback tenant").Len())
}

func TestResolveWithoutFallbackTenantUsesTemplate(t *testing.T) {
	reg := registry.New()
	r := New(reg, "", Environment{}, zap.NewNop())

	snap := r.Resolve("nonexistent")
	require.Equal(t, config.DefaultTemplate(), snap.Config)
}

func TestResolveAppliesAPIBaseURLOverride(t *testing.T) {
	environ := Environment{APIBaseURL: "http://localhost:8080"}
	r := New(seededRegistry(t), "crescent", environ, zap.NewNop())

	snap := r.Resolve("")
	require.Equal(t, "http://localhost:8080", snap.Config.API.BaseURL)
	// Only the base URL is overridden.
	require.Equal(t, "crescent", snap.Config.API.Database)
}

func TestResolveGenerationsDiffer(t *testing.T) {
	r := New(seededRegistry(t), "", Environment{}, zap.NewNop())

	first := r.Resolve("")
	second := r.Resolve("")
	require.NotEqual(t, first.Generation, second.Generation)
	require.Equal(t, first.Config, second.Config)
}
