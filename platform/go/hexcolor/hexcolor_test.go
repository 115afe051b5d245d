package hexcolor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", in: "#1e88e5", want: RGB{R: 0x1e, G: 0x88, B: 0xe5}},
		{name: "without hash", in: "1e88e5", want: RGB{R: 0x1e, G: 0x88, B: 0xe5}},
		{name: "uppercase", in: "#E53935", want: RGB{R: 0xe5, G: 0x39, B: 0x35}},
		{name: "surrounding spaces", in: " #ffffff ", want: RGB{R: 255, G: 255, B: 255}},
		{name: "short form rejected", in: "#fff", wantErr: true},
		{name: "not hex", in: "#zzzzzz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#000000", "#ffffff", "#1e88e5", "#e53935", "#0a0b0c"} {
		c, err := Parse(s)
		require.NoError(t, err)
		require.Equal(t, s, c.Hex())
	}
}

func TestLightenEndpoints(t *testing.T) {
	for _, s := range []string{"#000000", "#1e88e5", "#e53935", "#43a047", "#ffffff"} {
		require.Equal(t, s, Lighten(s, 0), "p=0 must be identity")
		require.Equal(t, "#ffffff", Lighten(s, 1), "p=1 must be white")
	}
}

func TestLightenKnownValues(t *testing.T) {
	// Byte-exact values; these bytes ship in brand assets.
	require.Equal(t, "#fbe1e1", Lighten("#e53935", 0.85))
	require.Equal(t, "#d9f0fb", Lighten("#039be5", 0.85))
	require.Equal(t, "#d9d9d9", Lighten("#000000", 0.85))
}

func TestLightenNeverDarkens(t *testing.T) {
	bases := []string{"#e53935", "#43a047", "#fb8c00", "#039be5", "#123456"}
	ratios := []float64{0, 0.25, 0.5, 0.85, 1}

	for _, s := range bases {
		base, err := Parse(s)
		require.NoError(t, err)
		for _, p := range ratios {
			tint, err := Parse(Lighten(s, p))
			require.NoError(t, err)
			require.GreaterOrEqual(t, tint.R, base.R)
			require.GreaterOrEqual(t, tint.G, base.G)
			require.GreaterOrEqual(t, tint.B, base.B)
		}
	}
}

func TestLightenMalformedPassthrough(t *testing.T) {
	require.Equal(t, "not-a-color", Lighten("not-a-color", 0.85))
	require.Equal(t, "", Lighten("", 0.85))
}
