package config

// AuthMode selects which authentication screens exist for a tenant.
type AuthMode string

const (
	AuthOTP      AuthMode = "otp"
	AuthPassword AuthMode = "password"
	AuthBoth     AuthMode = "both"
)

// AuthModeFromString converts a raw document value to an AuthMode; defaults
// to OTP on unknown input.
func AuthModeFromString(s string) AuthMode {
	switch AuthMode(s) {
	case AuthOTP, AuthPassword, AuthBoth:
		return AuthMode(s)
	default:
		return AuthOTP
	}
}

// Resolved is the complete, normalized configuration for one tenant. It is
// the only configuration shape the rest of the application sees; every field
// is populated after Normalize. Treat instances as read-only snapshots —
// changing a tenant means resolving again, never editing in place.
type Resolved struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	ShortName string         `json:"shortName"`
	Tagline   string         `json:"tagline"`
	API       APIConfig      `json:"api"`
	Firebase  FirebaseConfig `json:"firebase"`
	Auth      AuthConfig     `json:"auth"`
	Theme     ThemeConfig    `json:"theme"`
	Features  FeatureSet     `json:"features"`
}

// APIConfig is the normalized backend endpoint block.
type APIConfig struct {
	BaseURL  string `json:"baseUrl"`
	Database string `json:"database"`
}

// FirebaseConfig is the normalized push project identity block.
type FirebaseConfig struct {
	ProjectID string   `json:"projectId"`
	SenderID  string   `json:"senderId"`
	Topics    []string `json:"topics"`
}

// AuthConfig is the normalized authentication block.
type AuthConfig struct {
	Mode        AuthMode `json:"type"`
	OTPLength   int      `json:"otpLength"`
	CountryCode string   `json:"countryCode"`
}

// ThemeConfig is the normalized theme block.
type ThemeConfig struct {
	Colors BasePalette `json:"colors"`
	Fonts  FontSet     `json:"fonts"`
}

// FontSet names the tenant's font families.
type FontSet struct {
	Regular string `json:"regular"`
	Medium  string `json:"medium"`
	Bold    string `json:"bold"`
}

// BasePalette is the authored brand palette. The dark counterparts are part
// of the authored palette, not derived; dark mode substitutes them for their
// light siblings.
type BasePalette struct {
	Primary        string `json:"primary"`
	Background     string `json:"background"`
	BackgroundDark string `json:"backgroundDark"`
	Surface        string `json:"surface"`
	SurfaceDark    string `json:"surfaceDark"`
	Text           string `json:"text"`
	TextDark       string `json:"textDark"`
	TextSecondary  string `json:"textSecondary"`
	TextMuted      string `json:"textMuted"`
	Border         string `json:"border"`
	BorderDark     string `json:"borderDark"`
	Success        string `json:"success"`
	Warning        string `json:"warning"`
	Error          string `json:"error"`
	Info           string `json:"info"`
}

// merge overlays raw color entries onto the palette, field by field. Keys
// outside the canonical names are ignored. Values are taken as authored;
// tenant documents are curated, not validated here.
func (p *BasePalette) merge(colors map[string]string) {
	for key, value := range colors {
		switch key {
		case "primary":
			p.Primary = value
		case "background":
			p.Background = value
		case "backgroundDark":
			p.BackgroundDark = value
		case "surface":
			p.Surface = value
		case "surfaceDark":
			p.SurfaceDark = value
		case "text":
			p.Text = value
		case "textDark":
			p.TextDark = value
		case "textSecondary":
			p.TextSecondary = value
		case "textMuted":
			p.TextMuted = value
		case "border":
			p.Border = value
		case "borderDark":
			p.BorderDark = value
		case "success":
			p.Success = value
		case "warning":
			p.Warning = value
		case "error":
			p.Error = value
		case "info":
			p.Info = value
		}
	}
}

// FeatureSet is the normalized features block.
type FeatureSet struct {
	Modules       map[Module]ModuleConfig `json:"modules"`
	Notifications bool                    `json:"notifications"`
	Offline       bool                    `json:"offline"`
	DarkMode      bool                    `json:"darkMode"`
}

// ModuleConfig is one module's normalized record.
type ModuleConfig struct {
	Enabled            bool  `json:"enabled"`
	ShowPaymentGateway *bool `json:"showPaymentGateway,omitempty"`
}
