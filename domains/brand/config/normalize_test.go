package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }

func TestNormalizeEmptyDocumentEqualsTemplate(t *testing.T) {
	require.Equal(t, DefaultTemplate(), Normalize(Document{}))
}

func TestNormalizeDoesNotShareTemplateState(t *testing.T) {
	first := Normalize(Document{})
	first.Features.Modules[ModuleChat] = ModuleConfig{Enabled: true}
	first.Firebase.Topics[0] = "mutated"

	second := Normalize(Document{})
	require.False(t, second.Features.Modules[ModuleChat].Enabled)
	require.Equal(t, "announcements", second.Firebase.Topics[0])
}

func TestNormalizeIdentityAndAPI(t *testing.T) {
	raw := Document{
		ID:   "crescent",
		Name: "Crescent Public School",
		API:  &APIDocument{BaseURL: "https://api.crescent.example"},
	}

	got := Normalize(raw)
	require.Equal(t, "crescent", got.ID)
	require.Equal(t, "Crescent Public School", got.Name)
	require.Equal(t, "https://api.crescent.example", got.API.BaseURL)
	// Untouched fields come from the template.
	require.Equal(t, DefaultTemplate().ShortName, got.ShortName)
	require.Equal(t, DefaultTemplate().API.Database, got.API.Database)
}

func TestNormalizeColorsFieldByField(t *testing.T) {
	raw := Document{
		Theme: &ThemeDocument{
			Colors: map[string]string{
				"primary": "#00796b",
				"error":   "#c62828",
				"smoke":   "#abcdef", // outside the canonical names
			},
		},
	}

	got := Normalize(raw).Theme.Colors
	require.Equal(t, "#00796b", got.Primary)
	require.Equal(t, "#c62828", got.Error)
	require.Equal(t, defaultPalette().Background, got.Background)
	require.Equal(t, defaultPalette().Success, got.Success)
}

func TestNormalizeMalformedColorPassesThrough(t *testing.T) {
	raw := Document{
		Theme: &ThemeDocument{Colors: map[string]string{"primary": "teal-ish"}},
	}
	require.Equal(t, "teal-ish", Normalize(raw).Theme.Colors.Primary)
}

func TestNormalizeModuleMerge(t *testing.T) {
	raw := Document{
		Features: &FeaturesDocument{
			Modules: map[string]ModuleDocument{
				"fees": {Enabled: true, ShowPaymentGateway: boolPtr(true)},
			},
		},
	}

	got := Normalize(raw)

	fees := got.Features.Modules[ModuleFees]
	require.True(t, fees.Enabled)
	require.NotNil(t, fees.ShowPaymentGateway)
	require.True(t, *fees.ShowPaymentGateway)

	// Absent modules keep the template record, not false.
	gallery := got.Features.Modules[ModuleGallery]
	require.True(t, gallery.Enabled)
	require.Nil(t, gallery.ShowPaymentGateway)

	require.False(t, got.Features.Modules[ModuleChat].Enabled)
	require.True(t, got.Features.Modules[ModuleDashboard].Enabled)
}

func TestNormalizeModuleRecordReplacesWholesale(t *testing.T) {
	raw := Document{
		Features: &FeaturesDocument{
			Modules: map[string]ModuleDocument{
				// enabled omitted in the authored JSON decodes as false and
				// replaces the template record as-is.
				"gallery": {ShowPaymentGateway: boolPtr(true)},
			},
		},
	}

	gallery := Normalize(raw).Features.Modules[ModuleGallery]
	require.False(t, gallery.Enabled)
}

func TestNormalizeIgnoresUnknownModuleKeys(t *testing.T) {
	raw := Document{
		Features: &FeaturesDocument{
			Modules: map[string]ModuleDocument{"cafeteria": {Enabled: true}},
		},
	}

	got := Normalize(raw)
	require.Len(t, got.Features.Modules, len(AllModules()))
}

func TestNormalizeToggles(t *testing.T) {
	raw := Document{
		Features: &FeaturesDocument{
			Notifications: boolPtr(false),
			DarkMode:      boolPtr(false),
		},
	}

	got := Normalize(raw)
	require.False(t, got.Features.Notifications)
	require.False(t, got.Features.DarkMode)
	// Absent toggle keeps the template value.
	require.True(t, got.Features.Offline)
}

func TestNormalizeAuth(t *testing.T) {
	cases := []struct {
		name string
		raw  *AuthDocument
		want AuthConfig
	}{
		{
			name: "password mode",
			raw:  &AuthDocument{Type: "password"},
			want: AuthConfig{Mode: AuthPassword, OTPLength: 6, CountryCode: "+91"},
		},
		{
			name: "both with otp length",
			raw:  &AuthDocument{Type: "both", OTPLength: intPtr(4), CountryCode: "+971"},
			want: AuthConfig{Mode: AuthBoth, OTPLength: 4, CountryCode: "+971"},
		},
		{
			name: "unknown mode falls back to otp",
			raw:  &AuthDocument{Type: "biometric"},
			want: AuthConfig{Mode: AuthOTP, OTPLength: 6, CountryCode: "+91"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Normalize(Document{Auth: tc.raw}).Auth)
		})
	}
}

func TestParseModule(t *testing.T) {
	m, ok := ParseModule("leaveLetter")
	require.True(t, ok)
	require.Equal(t, ModuleLeaveLetter, m)

	_, ok = ParseModule("cafeteria")
	require.False(t, ok)
}
