package theme

import (
	"github.com/classpoint/brandkit/domains/brand/config"
	"github.com/classpoint/brandkit/platform/go/hexcolor"
)

// statusTintRatio is the fixed interpolation ratio for status-color tints.
// The resulting bytes ship in brand assets; do not change without a design
// review.
const statusTintRatio = 0.85

// SubjectColors are the fixed subject-area colors. They do not vary per
// tenant so that shared teaching material looks the same across schools.
type SubjectColors struct {
	Mathematics   string `json:"mathematics"`
	Science       string `json:"science"`
	English       string `json:"english"`
	SocialScience string `json:"socialScience"`
	Language      string `json:"language"`
	Computer      string `json:"computer"`
	Arts          string `json:"arts"`
	Sports        string `json:"sports"`
}

// AttendanceColors mark attendance states; they reuse the brand's status
// colors so every screen reports state in the tenant's own accent.
type AttendanceColors struct {
	Present string `json:"present"`
	Absent  string `json:"absent"`
	Late    string `json:"late"`
	Holiday string `json:"holiday"`
}

// ColorSet is the fully derived palette consumed by the UI layer. Every
// field is a pure function of the base palette and the dark-mode flag;
// nothing here is independently settable.
type ColorSet struct {
	Primary       string `json:"primary"`
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"textSecondary"`
	Border        string `json:"border"`

	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`

	SuccessLight string `json:"successLight"`
	WarningLight string `json:"warningLight"`
	ErrorLight   string `json:"errorLight"`
	InfoLight    string `json:"infoLight"`

	Subjects   SubjectColors    `json:"subjects"`
	Attendance AttendanceColors `json:"attendance"`
}

// DeriveColors computes the extended color set for a base palette and
// dark-mode flag. Dark mode is a partial override: background, surface,
// text, border and the secondary text tone swap to their dark counterparts
// while primary, status and subject colors stay put.
func DeriveColors(base config.BasePalette, darkMode bool) ColorSet {
	cs := ColorSet{
		Primary:       base.Primary,
		Background:    base.Background,
		Surface:       base.Surface,
		Text:          base.Text,
		TextSecondary: base.TextSecondary,
		Border:        base.Border,

		Success: base.Success,
		Warning: base.Warning,
		Error:   base.Error,
		Info:    base.Info,

		SuccessLight: hexcolor.Lighten(base.Success, statusTintRatio),
		WarningLight: hexcolor.Lighten(base.Warning, statusTintRatio),
		ErrorLight:   hexcolor.Lighten(base.Error, statusTintRatio),
		InfoLight:    hexcolor.Lighten(base.Info, statusTintRatio),

		Subjects: SubjectColors{
			Mathematics:   "#5c6bc0",
			Science:       "#26a69a",
			English:       "#ef5350",
			SocialScience: "#8d6e63",
			Language:      "#ab47bc",
			Computer:      "#42a5f5",
			Arts:          "#ec407a",
			Sports:        "#ffa726",
		},
		Attendance: AttendanceColors{
			Present: base.Success,
			Absent:  base.Error,
			Late:    base.Warning,
			Holiday: base.Info,
		},
	}

	if darkMode {
		cs.Background = base.BackgroundDark
		cs.Surface = base.SurfaceDark
		cs.Text = base.TextDark
		cs.TextSecondary = base.TextMuted
		cs.Border = base.BorderDark
	}

	return cs
}
