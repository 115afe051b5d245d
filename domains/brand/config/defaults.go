package config

// DefaultTemplate returns a fresh copy of the full default configuration.
// Normalize overlays a raw document onto this; every canonical field has a
// value here so normalization can never leave a gap. Returned by value with
// fresh maps/slices so callers cannot corrupt the template.
func DefaultTemplate() Resolved {
	return Resolved{
		ID:        "default",
		Name:      "ClassPoint School",
		ShortName: "ClassPoint",
		Tagline:   "Learning, connected.",
		API: APIConfig{
			BaseURL:  "https://api.classpoint.app",
			Database: "classpoint",
		},
		Firebase: FirebaseConfig{
			ProjectID: "classpoint-app",
			SenderID:  "",
			Topics:    []string{"announcements", "alerts"},
		},
		Auth: AuthConfig{
			Mode:        AuthOTP,
			OTPLength:   6,
			CountryCode: "+91",
		},
		Theme: ThemeConfig{
			Colors: defaultPalette(),
			Fonts: FontSet{
				Regular: "Inter-Regular",
				Medium:  "Inter-Medium",
				Bold:    "Inter-Bold",
			},
		},
		Features: FeatureSet{
			Modules:       defaultModules(),
			Notifications: true,
			Offline:       true,
			DarkMode:      true,
		},
	}
}

func defaultPalette() BasePalette {
	return BasePalette{
		Primary:        "#1e88e5",
		Background:     "#ffffff",
		BackgroundDark: "#121212",
		Surface:        "#f5f5f5",
		SurfaceDark:    "#1e1e1e",
		Text:           "#212121",
		TextDark:       "#fafafa",
		TextSecondary:  "#616161",
		TextMuted:      "#9e9e9e",
		Border:         "#e0e0e0",
		BorderDark:     "#373737",
		Success:        "#43a047",
		Warning:        "#fb8c00",
		Error:          "#e53935",
		Info:           "#039be5",
	}
}

// defaultModules enables every module except chat, which schools opt into
// explicitly.
func defaultModules() map[Module]ModuleConfig {
	modules := make(map[Module]ModuleConfig, len(AllModules()))
	for _, m := range AllModules() {
		modules[m] = ModuleConfig{Enabled: m != ModuleChat}
	}
	return modules
}
