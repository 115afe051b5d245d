package config

// Document is the raw, externally-authored declarative configuration for one
// tenant. Every field is optional; Normalize fills the gaps from the default
// template. Field names and nesting follow the authoring format; unknown
// extra keys in the JSON are ignored on decode.
type Document struct {
	ID        string            `json:"id,omitempty"`
	Name      string            `json:"name,omitempty"`
	ShortName string            `json:"shortName,omitempty"`
	Tagline   string            `json:"tagline,omitempty"`
	API       *APIDocument      `json:"api,omitempty"`
	Firebase  *FirebaseDocument `json:"firebase,omitempty"`
	Auth      *AuthDocument     `json:"auth,omitempty"`
	Theme     *ThemeDocument    `json:"theme,omitempty"`
	Features  *FeaturesDocument `json:"features,omitempty"`
}

// APIDocument carries the tenant's backend endpoint settings.
type APIDocument struct {
	BaseURL  string `json:"baseUrl,omitempty"`
	Database string `json:"database,omitempty"`
}

// FirebaseDocument carries the push-notification project identity. The
// engine only transports these values; registration against the project is
// an external collaborator's job.
type FirebaseDocument struct {
	ProjectID string   `json:"projectId,omitempty"`
	SenderID  string   `json:"senderId,omitempty"`
	Topics    []string `json:"topics,omitempty"`
}

// AuthDocument carries the tenant's authentication settings.
type AuthDocument struct {
	Type        string `json:"type,omitempty"`
	OTPLength   *int   `json:"otpLength,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// ThemeDocument carries the brand palette and font family names. Colors are
// keyed by the canonical palette field names (primary, background,
// backgroundDark, ...); unknown keys are ignored during normalization.
type ThemeDocument struct {
	Colors map[string]string `json:"colors,omitempty"`
	Fonts  *FontsDocument    `json:"fonts,omitempty"`
}

// FontsDocument names the font families used by the tenant.
type FontsDocument struct {
	Regular string `json:"regular,omitempty"`
	Medium  string `json:"medium,omitempty"`
	Bold    string `json:"bold,omitempty"`
}

// FeaturesDocument carries per-module flags plus the cross-cutting toggles.
// The toggles are pointers so that an absent value can be told apart from an
// explicit false and filled from the template.
type FeaturesDocument struct {
	Modules       map[string]ModuleDocument `json:"modules,omitempty"`
	Notifications *bool                     `json:"notifications,omitempty"`
	Offline       *bool                     `json:"offline,omitempty"`
	DarkMode      *bool                     `json:"darkMode,omitempty"`
}

// ModuleDocument is one module's record in the raw document. A module key
// present in the document replaces the template's record wholesale; there is
// no per-field merge inside a module record.
type ModuleDocument struct {
	Enabled            bool  `json:"enabled"`
	ShowPaymentGateway *bool `json:"showPaymentGateway,omitempty"`
}
