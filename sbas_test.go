package gnss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every catalog entry must name a valid augmentation service on GPST,
// carry an SBAS-range PRN and a usable launch record. A violation here
// means the embedded database is broken, not the code.
func TestVehicleCatalogSanity(t *testing.T) {
	vehicles := SBASVehicles()
	require.NotEmpty(t, vehicles)

	for _, vehicle := range vehicles {
		assert.True(t, vehicle.Constellation.IsSBAS(), "vehicle %s", vehicle.Name)
		assert.Equal(t, GPST, vehicle.Constellation.TimeScale(), "vehicle %s", vehicle.Name)
		assert.Greater(t, vehicle.PRN, uint16(100), "vehicle %s", vehicle.Name)
		assert.LessOrEqual(t, vehicle.PRN, uint16(158), "vehicle %s", vehicle.Name)
		assert.NotEmpty(t, vehicle.Name)
		assert.False(t, vehicle.Launched.IsZero(), "vehicle %s", vehicle.Name)
		assert.Equal(t, vehicle.Launched.Year(), vehicle.COSPAR.Year(),
			"launch date and designator year disagree for %s", vehicle.Name)
	}
}

func TestLookupSBASVehicle(t *testing.T) {
	vehicle, ok := LookupSBASVehicle(23)
	require.True(t, ok)
	assert.Equal(t, EGNOS, vehicle.Constellation)
	assert.Equal(t, "ASTRA-5B", vehicle.Name)
	assert.Equal(t, uint16(123), vehicle.PRN)

	_, ok = LookupSBASVehicle(99)
	assert.False(t, ok)
}

func TestSelectSBAS(t *testing.T) {
	tests := []struct {
		name    string
		latDeg  float64
		lonDeg  float64
		want    Constellation
		covered bool
	}{
		{"paris", 48.808378, 2.38268, EGNOS, true},
		{"los angeles", 33.981431, -118.193601, WAAS, true},
		{"central india", 19.314290, 76.798953, GAGAN, true},
		{"central australia", -27.579847, 131.334992, SPAN, true},
		{"new zealand", -45.113525, 169.864842, SPAN, true},
		{"tibet", 34.462967, 98.172480, GAGAN, true},
		{"korea", 37.067846, 128.34, KASS, true},
		{"japan", 36.081095, 138.274859, MSAS, true},
		{"siberia", 60.004390, 89.090326, SDCM, true},
		{"south africa", -32.473320, 21.112770, ASBAS, true},
		{"argentina", -23.216639, -63.170983, SBAS, false},
		{"antarctica", -77.490631, 91.435181, SBAS, false},
		{"south indian ocean", -29.349172, 72.773447, SBAS, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectSBAS(tt.latDeg, tt.lonDeg)
			assert.Equal(t, tt.covered, ok)
			if tt.covered {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// Coverage areas must reference services the registry knows, and each
// must be a usable polygon.
func TestCoverageMapSanity(t *testing.T) {
	sbasOnce.Do(loadSBAS)
	require.NotEmpty(t, sbasCoverage)

	for _, area := range sbasCoverage {
		assert.True(t, area.constellation.IsSBAS())
		assert.GreaterOrEqual(t, len(area.ring), 3)
	}
}
