package gnss

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Embedded reference databases. These are decoded once on first use and
// never mutated afterwards, so concurrent readers need no locking.
var (
	//go:embed sbas_vehicles.yaml
	sbasVehiclesRaw []byte

	//go:embed sbas_coverage.yaml
	sbasCoverageRaw []byte
)

// SBASVehicle describes one cataloged geostationary augmentation
// satellite.
type SBASVehicle struct {
	// Constellation is the augmentation service operating the vehicle.
	Constellation Constellation

	// PRN is the full SBAS PRN (120..158). The matching SV short form
	// uses the slot number, i.e. PRN-100: "S23" is PRN 123.
	PRN uint16

	// Name is the readable vehicle designation, e.g. "ASTRA-5B".
	Name string

	// COSPAR is the vehicle's launch designator.
	COSPAR COSPAR

	// Launched is the launch date, at UTC midnight.
	Launched time.Time
}

// rawSBASVehicle is the on-disk shape of a catalog entry; fields are
// plain strings so the loader controls all parsing.
type rawSBASVehicle struct {
	Constellation string `yaml:"constellation"`
	PRN           uint16 `yaml:"prn"`
	Name          string `yaml:"name"`
	COSPAR        string `yaml:"cospar"`
	Launched      string `yaml:"launched"`
}

var (
	sbasOnce     sync.Once
	sbasCatalog  []SBASVehicle
	sbasCoverage []sbasServiceArea
)

type sbasServiceArea struct {
	constellation Constellation
	ring          [][2]float64 // lon, lat vertices in degrees
}

type rawCoverage struct {
	Services []struct {
		Name    string       `yaml:"name"`
		Polygon [][2]float64 `yaml:"polygon"`
	} `yaml:"services"`
}

// loadSBAS decodes both embedded databases. The data ships inside the
// binary, so any decode failure is a build defect and panics rather
// than surfacing as a runtime error.
func loadSBAS() {
	var rawVehicles []rawSBASVehicle
	if err := yaml.Unmarshal(sbasVehiclesRaw, &rawVehicles); err != nil {
		panic(fmt.Sprintf("gnss: corrupt SBAS vehicle catalog: %v", err))
	}

	sbasCatalog = make([]SBASVehicle, 0, len(rawVehicles))
	for _, raw := range rawVehicles {
		constellation, err := ParseConstellation(raw.Constellation)
		if err != nil {
			panic(fmt.Sprintf("gnss: SBAS catalog entry %q: %v", raw.Name, err))
		}
		cospar, err := ParseCOSPAR(raw.COSPAR)
		if err != nil {
			panic(fmt.Sprintf("gnss: SBAS catalog entry %q: %v", raw.Name, err))
		}
		launched, err := time.Parse("2006-01-02", raw.Launched)
		if err != nil {
			panic(fmt.Sprintf("gnss: SBAS catalog entry %q: %v", raw.Name, err))
		}
		sbasCatalog = append(sbasCatalog, SBASVehicle{
			Constellation: constellation,
			PRN:           raw.PRN,
			Name:          raw.Name,
			COSPAR:        cospar,
			Launched:      launched,
		})
	}

	var coverage rawCoverage
	if err := yaml.Unmarshal(sbasCoverageRaw, &coverage); err != nil {
		panic(fmt.Sprintf("gnss: corrupt SBAS coverage map: %v", err))
	}
	sbasCoverage = make([]sbasServiceArea, 0, len(coverage.Services))
	for _, service := range coverage.Services {
		constellation, err := ParseConstellation(service.Name)
		if err != nil {
			panic(fmt.Sprintf("gnss: SBAS coverage area %q: %v", service.Name, err))
		}
		sbasCoverage = append(sbasCoverage, sbasServiceArea{
			constellation: constellation,
			ring:          service.Polygon,
		})
	}
}

func sbasVehicles() []SBASVehicle {
	sbasOnce.Do(loadSBAS)
	return sbasCatalog
}

// SBASVehicles returns the embedded SBAS vehicle catalog, in PRN order.
// The returned slice is a copy; the catalog itself is immutable.
func SBASVehicles() []SBASVehicle {
	vehicles := sbasVehicles()
	out := make([]SBASVehicle, len(vehicles))
	copy(out, vehicles)
	return out
}

// LookupSBASVehicle resolves an SV slot number against the vehicle
// catalog. SBAS PRNs are offset by 100 from the slot in the short form,
// so "S23" resolves via slot 23 to the PRN 123 entry.
func LookupSBASVehicle(slot uint8) (SBASVehicle, bool) {
	want := uint16(slot) + 100
	for _, vehicle := range sbasVehicles() {
		if vehicle.PRN == want {
			return vehicle, true
		}
	}
	return SBASVehicle{}, false
}

// SelectSBAS returns the augmentation service covering the given
// position, for receivers choosing which geo service to track. The
// embedded coverage map is coarse; positions outside every service area
// (oceans, polar regions) report ok=false.
func SelectSBAS(latDeg, lonDeg float64) (Constellation, bool) {
	sbasOnce.Do(loadSBAS)
	for _, area := range sbasCoverage {
		if pointInRing(lonDeg, latDeg, area.ring) {
			return area.constellation, true
		}
	}
	return SBAS, false
}

// pointInRing reports whether the point lies inside the polygon ring,
// by ray casting. Vertices are (lon, lat) pairs; the ring closes
// implicitly from the last vertex back to the first.
func pointInRing(lon, lat float64, ring [][2]float64) bool {
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if (yi > lat) != (yj > lat) &&
			lon < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
