package hexcolor

import (
	"fmt"
	"math"
	"strings"
)

// RGB holds one color channel per byte.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Parse decodes a six-digit hex color, with or without the leading '#'.
func Parse(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("hex color must have 6 digits, got %q", s)
	}

	var c RGB
	if _, err := fmt.Sscanf(strings.ToLower(hex), "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("decode hex color %q: %w", s, err)
	}
	return c, nil
}

// Hex encodes the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten interpolates each channel of a hex color toward white by ratio p
// in [0, 1]: channel + (255 - channel) * p, rounded to the nearest integer.
// The exact output bytes are part of the brand design contract; callers rely
// on Lighten(c, 0) == c and Lighten(c, 1) == "#ffffff".
// Malformed input is returned unchanged rather than rejected; tenant
// documents are not validated at runtime.
func Lighten(s string, p float64) string {
	c, err := Parse(s)
	if err != nil {
		return s
	}
	return RGB{
		R: lightenChannel(c.R, p),
		G: lightenChannel(c.G, p),
		B: lightenChannel(c.B, p),
	}.Hex()
}

func lightenChannel(ch uint8, p float64) uint8 {
	v := math.Round(float64(ch) + (255-float64(ch))*p)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
