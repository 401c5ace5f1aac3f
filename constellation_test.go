package gnss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConstellation(t *testing.T) {
	tests := []struct {
		input string
		want  Constellation
	}{
		{"G", GPS},
		{"GPS", GPS},
		{"gps", GPS},
		{"R", Glonass},
		{"GLO", Glonass},
		{"Glonass", Glonass},
		{"C", BeiDou},
		{"BDS", BeiDou},
		{"BeiDou", BeiDou},
		{"beidou", BeiDou},
		{"E", Galileo},
		{"GAL", Galileo},
		{"Galileo", Galileo},
		{"J", QZSS},
		{"QZSS", QZSS},
		{"I", IRNSS},
		{"IRNSS", IRNSS},
		{"NAV/IC", IRNSS},
		{"S", SBAS},
		{"M", Mixed},
		{"MIXED", Mixed},
		{"WAAS", WAAS},
		{"KASS", KASS},
		{"GBAS", GBAS},
		{"NSAS", NSAS},
		{"SPAN", SPAN},
		{"EGNOS", EGNOS},
		{"ASBAS", ASBAS},
		{"MSAS", MSAS},
		{"GAGAN", GAGAN},
		{"BDSBAS", BDSBAS},
		{"ASAL", ASAL},
		{"SDCM", SDCM},
		{"AUS/NZ", AusNZ},
		{" GPS ", GPS},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseConstellation(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConstellationUnknown(t *testing.T) {
	for _, input := range []string{"X", "x", "GPX", "gpx", "unknown", "blah", "XYZ", ""} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseConstellation(input)
			assert.ErrorIs(t, err, ErrUnknownConstellation)
		})
	}
}

// Every display form must parse back to the tag that produced it, so
// serialized values survive a round trip through any of the formats.
func TestFormattingReciprocal(t *testing.T) {
	for _, c := range Constellations {
		fromCode, err := ParseConstellation(c.Code())
		require.NoError(t, err, "code %q must parse", c.Code())
		assert.Equal(t, c, fromCode, "code %q", c.Code())

		fromDisplay, err := ParseConstellation(c.String())
		require.NoError(t, err, "display %q must parse", c.String())
		assert.Equal(t, c, fromDisplay, "display %q", c.String())
	}
}

// Normalization is idempotent: re-parsing a canonical code changes
// nothing.
func TestNormalizationIdempotent(t *testing.T) {
	aliases := map[string]Constellation{
		"BeiDou":      BeiDou,
		"BDS":         BeiDou,
		"C":           BeiDou,
		"Glonass":     Glonass,
		"GLO":         Glonass,
		"NAV/IC":      IRNSS,
		"GPS (US)":    GPS,
		"BeiDou (CH)": BeiDou,
	}
	for alias, want := range aliases {
		got, err := ParseConstellation(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, got, alias)

		again, err := ParseConstellation(got.Code())
		require.NoError(t, err, alias)
		assert.Equal(t, got, again, "idempotence for %q", alias)
	}
}

func TestFormatting(t *testing.T) {
	tests := []struct {
		constellation Constellation
		display       string
		code          string
		letter        rune
	}{
		{GPS, "GPS (US)", "GPS", 'G'},
		{Glonass, "Glonass (RU)", "GLO", 'R'},
		{BeiDou, "BeiDou (CH)", "BDS", 'C'},
		{Galileo, "Galileo (EU)", "GAL", 'E'},
		{QZSS, "QZSS (JP)", "QZSS", 'J'},
		{IRNSS, "IRNSS (IN)", "IRNSS", 'I'},
		{EGNOS, "EGNOS (EU)", "EGNOS", 'S'},
		{AusNZ, "AUS/NZ (AUS)", "AUS/NZ", 'S'},
		{Mixed, "MIXED", "MIX", 'M'},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.display, tt.constellation.String())
			assert.Equal(t, tt.code, tt.constellation.Code())
			assert.Equal(t, tt.letter, tt.constellation.Letter())
		})
	}
}

func TestIsSBAS(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"WAAS", true},
		{"EGNOS", true},
		{"KASS", true},
		{"ASBAS", true},
		{"GBAS", true},
		{"GAGAN", true},
		{"MSAS", true},
		{"ASAL", true},
		{"GPS", false},
		{"GAL", false},
		{"BeiDou", false},
		{"BDS", false},
		{"QZSS", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseConstellation(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.IsSBAS())
		})
	}
}

func TestTimeScaleMapping(t *testing.T) {
	tests := []struct {
		input string
		want  TimeScale
	}{
		{"GPS", GPST},
		{"GAL", GST},
		{"BeiDou", BDT},
		{"BDS", BDT},
		{"QZSS", QZSST},
		{"Glonass", GLONASST},
		{"IRNSS", IRNWT},
		{"WAAS", GPST},
		{"EGNOS", GPST},
		{"KASS", GPST},
		{"ASBAS", GPST},
		{"GBAS", GPST},
		{"GAGAN", GPST},
		{"MIXED", UTC},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseConstellation(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.TimeScale())
		})
	}
}

// The registry mapping is total and stable: every declared tag has a
// time scale, and repeated lookups agree.
func TestTimeScaleTotal(t *testing.T) {
	for _, c := range Constellations {
		first := c.TimeScale()
		assert.NotEqual(t, "UNKNOWN", first.String(), "constellation %s", c.Code())
		assert.Equal(t, first, c.TimeScale(), "constellation %s", c.Code())
	}
}

func TestCountryCode(t *testing.T) {
	tests := []struct {
		constellation Constellation
		code          string
		ok            bool
	}{
		{GPS, "US", true},
		{WAAS, "US", true},
		{Galileo, "EU", true},
		{BeiDou, "CH", true},
		{SDCM, "RU", true},
		{KASS, "KR", true},
		{SPAN, "AUS/NZ", true},
		{SBAS, "", false},
		{Mixed, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.constellation.Code(), func(t *testing.T) {
			code, ok := tt.constellation.CountryCode()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestFromCountry(t *testing.T) {
	tests := []struct {
		code string
		want Constellation
	}{
		{"US", GPS},
		{"USA", GPS},
		{"Europe", Galileo},
		{"China", BeiDou},
		{"Russia", Glonass},
		{"Japan", QZSS},
		{"India", IRNSS},
	}
	for _, tt := range tests {
		got, ok := ConstellationFromCountry(tt.code)
		require.True(t, ok, tt.code)
		assert.Equal(t, tt.want, got, tt.code)
	}

	_, ok := ConstellationFromCountry("atlantis")
	assert.False(t, ok)
}

func TestSBASFromCountry(t *testing.T) {
	tests := []struct {
		code string
		want Constellation
	}{
		{"US", WAAS},
		{"EU", EGNOS},
		{"China", BDSBAS},
		{"RU", SDCM},
		{"Japan", MSAS},
		{"IN", GAGAN},
		{"UK", GBAS},
		{"Korea", KASS},
		{"South-Africa", ASBAS},
		{"NZ", SPAN},
		{"Australia", SPAN},
	}
	for _, tt := range tests {
		got, ok := SBASFromCountry(tt.code)
		require.True(t, ok, tt.code)
		assert.Equal(t, tt.want, got, tt.code)
	}

	_, ok := SBASFromCountry("atlantis")
	assert.False(t, ok)
}

func TestConstellationText(t *testing.T) {
	b, err := BeiDou.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "BDS", string(b))

	var c Constellation
	require.NoError(t, c.UnmarshalText([]byte("BeiDou")))
	assert.Equal(t, BeiDou, c)

	assert.ErrorIs(t, c.UnmarshalText([]byte("XYZ")), ErrUnknownConstellation)
	assert.Equal(t, BeiDou, c, "failed decode must not clobber the value")

	_, err = Constellation(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownConstellation)
}

func TestTimeScaleLabels(t *testing.T) {
	tests := []struct {
		scale TimeScale
		label string
	}{
		{GPST, "GPST"},
		{GLONASST, "GLONASST"},
		{GST, "GST"},
		{BDT, "BDT"},
		{QZSST, "QZSST"},
		{IRNWT, "IRNWT"},
		{UTC, "UTC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, tt.scale.String())
	}
}
