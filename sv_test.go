package gnss

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSV(t *testing.T) {
	// Tag-typed and textual constellation inputs behave identically.
	fromTag, err := NewSV(GPS, 1)
	require.NoError(t, err)
	assert.Equal(t, GPS, fromTag.Constellation())
	assert.Equal(t, uint8(1), fromTag.PRN())
	assert.Equal(t, "GPS", fromTag.Constellation().Code())

	fromName, err := NewSV(ConstellationName("GPS"), 1)
	require.NoError(t, err)
	assert.Equal(t, fromTag, fromName)

	// Aliases collapse at construction.
	sv, err := NewSV(ConstellationName("BeiDou"), 5)
	require.NoError(t, err)
	assert.Equal(t, BeiDou, sv.Constellation())
	assert.Equal(t, "BDS", sv.Constellation().Code())
}

func TestNewSVInvalidPRN(t *testing.T) {
	for _, prn := range []int{0, -1, 256} {
		_, err := NewSV(GPS, prn)
		assert.ErrorIs(t, err, ErrInvalidPRN, "prn %d", prn)
	}
}

func TestNewSVUnknownConstellation(t *testing.T) {
	_, err := NewSV(ConstellationName("XYZ"), 1)
	assert.ErrorIs(t, err, ErrUnknownConstellation)

	_, err = NewSV(Constellation(99), 1)
	assert.ErrorIs(t, err, ErrUnknownConstellation)
}

func TestSetConstellation(t *testing.T) {
	sv, err := NewSV(ConstellationName("GPS"), 1)
	require.NoError(t, err)

	// Canonical code on write.
	require.NoError(t, sv.SetConstellation(ConstellationName("BDS")))
	assert.Equal(t, BeiDou, sv.Constellation())
	assert.Equal(t, "BDS", sv.Constellation().Code())

	// The alias collapses on write, not just on read.
	require.NoError(t, sv.SetConstellation(ConstellationName("BeiDou")))
	assert.Equal(t, BeiDou, sv.Constellation())
	assert.Equal(t, "BDS", sv.Constellation().Code())

	// Reassignment leaves the PRN alone.
	assert.Equal(t, uint8(1), sv.PRN())

	// A failed write must not clobber the current value.
	assert.ErrorIs(t, sv.SetConstellation(ConstellationName("XYZ")), ErrUnknownConstellation)
	assert.Equal(t, BeiDou, sv.Constellation())

	// Tag-typed assignment goes through the same validation.
	require.NoError(t, sv.SetConstellation(Galileo))
	assert.Equal(t, Galileo, sv.Constellation())
}

func TestSVTimeScale(t *testing.T) {
	tests := []struct {
		id   string
		want TimeScale
	}{
		{"G01", GPST},
		{"E13", GST},
		{"C05", BDT},
		{"R09", GLONASST},
		{"J02", QZSST},
		{"I04", IRNWT},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			sv, err := ParseSV(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sv.TimeScale())
		})
	}

	sv, err := NewSV(ConstellationName("GPS"), 1)
	require.NoError(t, err)
	assert.Equal(t, GPST, sv.TimeScale())
}

func TestParseSV(t *testing.T) {
	tests := []struct {
		input             string
		wantConstellation Constellation
		wantPRN           uint8
	}{
		{"G01", GPS, 1},
		{"G 1", GPS, 1},
		{"G33", GPS, 33},
		{"C01", BeiDou, 1},
		{"C 3", BeiDou, 3},
		{"R01", Glonass, 1},
		{"R 1", Glonass, 1},
		{"C254", BeiDou, 254},
		{"E4 ", Galileo, 4},
		{"R 9", Glonass, 9},
		{"I 3", IRNSS, 3},
		{"I09", IRNSS, 9},
		{"I16", IRNSS, 16},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sv, err := ParseSV(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantConstellation, sv.Constellation())
			assert.Equal(t, tt.wantPRN, sv.PRN())
		})
	}
}

func TestParseSVInvalid(t *testing.T) {
	for _, input := range []string{"", "G", "G00", "GXX", "X01", "C256"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSV(input)
			assert.Error(t, err)
		})
	}
}

// Generic "SXX" identifiers resolve to the concrete augmentation
// service when the vehicle catalog knows the slot, and keep the generic
// SBAS tag otherwise.
func TestParseSVSBAS(t *testing.T) {
	tests := []struct {
		input             string
		wantConstellation Constellation
		wantShort         string
		wantDesignation   string
	}{
		{"S 3", SBAS, "S03", "S03"},
		{"S 5", SBAS, "S05", "S05"},
		{"S22", AusNZ, "S22", "INMARSAT-4F1"},
		{"S23", EGNOS, "S23", "ASTRA-5B"},
		{"S25", SDCM, "S25", "Luch-5A"},
		{"S48", ASAL, "S48", "ALCOMSAT-1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sv, err := ParseSV(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantConstellation, sv.Constellation())
			assert.Equal(t, tt.wantShort, sv.String())
			assert.Equal(t, tt.wantDesignation, sv.Designation())
			assert.True(t, sv.Constellation().IsSBAS())
		})
	}
}

func TestFormatSV(t *testing.T) {
	sv, err := ParseSV("G01")
	require.NoError(t, err)

	assert.Equal(t, "G01", sv.String())
	assert.Equal(t, "G001", FormatSV(sv, 3))
	assert.Equal(t, "G1", FormatSV(sv, 1))

	// Padding width is display policy only: wide and narrow forms
	// identify the same vehicle.
	wide, err := ParseSV("G001")
	require.NoError(t, err)
	assert.Equal(t, sv, wide)
}

func TestSVText(t *testing.T) {
	sv, err := ParseSV("C07")
	require.NoError(t, err)

	b, err := sv.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "C07", string(b))

	var decoded SV
	require.NoError(t, decoded.UnmarshalText(b))
	assert.Equal(t, sv, decoded)
}

func TestIsBeiDouGEO(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"G01", false},
		{"E01", false},
		{"C01", true},
		{"C02", true},
		{"C06", false},
		{"C48", false},
		{"C59", true},
		{"C60", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			sv, err := ParseSV(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sv.IsBeiDouGEO())
		})
	}
}

func TestLaunchDate(t *testing.T) {
	sv, err := ParseSV("S23")
	require.NoError(t, err)

	launched, ok := sv.LaunchDate()
	require.True(t, ok)
	assert.Equal(t, time.Date(2014, 3, 22, 0, 0, 0, 0, time.UTC), launched)

	gps, err := ParseSV("G01")
	require.NoError(t, err)
	_, ok = gps.LaunchDate()
	assert.False(t, ok, "launch dates are only cataloged for SBAS vehicles")
}
