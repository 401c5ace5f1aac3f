package gnss

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownConstellation is returned when a string matches no known
// constellation tag or alias.
var ErrUnknownConstellation = errors.New("unknown constellation")

// Constellation identifies a GNSS system or geostationary augmentation
// (SBAS) service. The set is closed: every tag is declared below and
// registered in the time-scale table, which is verified at package init.
type Constellation int

const (
	// GPS is the american constellation.
	GPS Constellation = iota

	// Glonass is the russian constellation.
	Glonass

	// BeiDou is the chinese constellation. Its canonical code is "BDS".
	BeiDou

	// QZSS is the japanese constellation.
	QZSS

	// Galileo is the european constellation.
	Galileo

	// IRNSS is the indian constellation, also known as NavIC.
	IRNSS

	// WAAS is the american augmentation service.
	WAAS

	// EGNOS is the european augmentation service.
	EGNOS

	// MSAS is the japanese augmentation service.
	MSAS

	// GAGAN is the indian augmentation service.
	GAGAN

	// BDSBAS is the chinese augmentation service.
	BDSBAS

	// KASS is the south korean augmentation service.
	KASS

	// SDCM is the russian augmentation service.
	SDCM

	// ASBAS is the south african augmentation service.
	ASBAS

	// SPAN is the australian / new zealand augmentation service.
	SPAN

	// SBAS describes an augmentation service not further identified in
	// the vehicle catalog.
	SBAS

	// AusNZ is the australian / new zealand geoscience service.
	AusNZ

	// GBAS is the UK augmentation service.
	GBAS

	// NSAS is the nigerian augmentation service.
	NSAS

	// ASAL is the algerian augmentation service.
	ASAL

	// Mixed describes products or datasets that combine several
	// constellations, as modern receivers and RINEX files do.
	Mixed
)

// Constellations lists every tag in the registry, in declaration order.
var Constellations = []Constellation{
	GPS, Glonass, BeiDou, QZSS, Galileo, IRNSS,
	WAAS, EGNOS, MSAS, GAGAN, BDSBAS, KASS, SDCM, ASBAS, SPAN,
	SBAS, AusNZ, GBAS, NSAS, ASAL, Mixed,
}

// defaultTimeScale is the registry's constellation -> time scale table.
// It must be total over Constellations; init panics otherwise, because a
// missing entry is a defect in this table, not a runtime condition.
var defaultTimeScale = map[Constellation]TimeScale{
	GPS:     GPST,
	Glonass: GLONASST,
	BeiDou:  BDT,
	QZSS:    QZSST,
	Galileo: GST,
	IRNSS:   IRNWT,
	WAAS:    GPST,
	EGNOS:   GPST,
	MSAS:    GPST,
	GAGAN:   GPST,
	BDSBAS:  GPST,
	KASS:    GPST,
	SDCM:    GPST,
	ASBAS:   GPST,
	SPAN:    GPST,
	SBAS:    GPST,
	AusNZ:   GPST,
	GBAS:    GPST,
	NSAS:    GPST,
	ASAL:    GPST,
	Mixed:   UTC,
}

func init() {
	for _, c := range Constellations {
		if _, ok := defaultTimeScale[c]; !ok {
			panic(fmt.Sprintf("gnss: constellation %q has no registered time scale", c.Code()))
		}
	}
}

// known reports whether c is one of the declared tags.
func (c Constellation) known() bool {
	return c >= GPS && c <= Mixed
}

// IsSBAS reports whether c is a geostationary augmentation service.
func (c Constellation) IsSBAS() bool {
	switch c {
	case WAAS, EGNOS, MSAS, GAGAN, BDSBAS, KASS, SDCM, ASBAS, SPAN,
		SBAS, AusNZ, GBAS, NSAS, ASAL:
		return true
	default:
		return false
	}
}

// TimeScale returns the time scale this constellation is referenced to.
// The mapping is total: every SBAS service runs on GPST and mixed
// products are referenced to UTC.
func (c Constellation) TimeScale() TimeScale {
	return defaultTimeScale[c]
}

// Code returns the canonical short code, e.g. "GPS", "GLO" or "BDS".
// Aliases collapse to this form: parsing "BeiDou" and printing its Code
// yields "BDS". The output parses back to the same tag.
func (c Constellation) Code() string {
	switch c {
	case GPS:
		return "GPS"
	case Glonass:
		return "GLO"
	case BeiDou:
		return "BDS"
	case QZSS:
		return "QZSS"
	case Galileo:
		return "GAL"
	case IRNSS:
		return "IRNSS"
	case WAAS:
		return "WAAS"
	case EGNOS:
		return "EGNOS"
	case MSAS:
		return "MSAS"
	case GAGAN:
		return "GAGAN"
	case BDSBAS:
		return "BDSBAS"
	case KASS:
		return "KASS"
	case SDCM:
		return "SDCM"
	case ASBAS:
		return "ASBAS"
	case SPAN:
		return "SPAN"
	case SBAS:
		return "SBAS"
	case AusNZ:
		return "AUS/NZ"
	case GBAS:
		return "GBAS"
	case NSAS:
		return "NSAS"
	case ASAL:
		return "ASAL"
	case Mixed:
		return "MIX"
	default:
		return "UNKNOWN"
	}
}

// String returns the constellation full name along its country code,
// e.g. "GPS (US)" or "Glonass (RU)". The output parses back to the same
// tag with ParseConstellation.
func (c Constellation) String() string {
	switch c {
	case GPS:
		return "GPS (US)"
	case Glonass:
		return "Glonass (RU)"
	case BeiDou:
		return "BeiDou (CH)"
	case QZSS:
		return "QZSS (JP)"
	case Galileo:
		return "Galileo (EU)"
	case IRNSS:
		return "IRNSS (IN)"
	case WAAS:
		return "WAAS (US)"
	case EGNOS:
		return "EGNOS (EU)"
	case MSAS:
		return "MSAS (JP)"
	case GAGAN:
		return "GAGAN (IN)"
	case BDSBAS:
		return "BDSBAS (CH)"
	case KASS:
		return "KASS (KR)"
	case SDCM:
		return "SDCM (RU)"
	case ASBAS:
		return "ASBAS (SA)"
	case SPAN:
		return "SPAN (AUS)"
	case SBAS:
		return "SBAS"
	case AusNZ:
		return "AUS/NZ (AUS)"
	case GBAS:
		return "GBAS (UK)"
	case NSAS:
		return "NSAS (NI)"
	case ASAL:
		return "ASAL (AL)"
	case Mixed:
		return "MIXED"
	default:
		return "UNKNOWN"
	}
}

// Letter returns the single-letter form used by the RINEX file naming
// convention: 'G' for GPS, 'R' for Glonass, 'C' for BeiDou, 'E' for
// Galileo, 'J' for QZSS, 'I' for IRNSS, 'S' for any augmentation
// service and 'M' for mixed products.
func (c Constellation) Letter() rune {
	switch c {
	case GPS:
		return 'G'
	case Glonass:
		return 'R'
	case Galileo:
		return 'E'
	case BeiDou:
		return 'C'
	case QZSS:
		return 'J'
	case IRNSS:
		return 'I'
	case Mixed:
		return 'M'
	default:
		return 'S'
	}
}

// CountryCode returns the two or three letter country code operating
// this constellation, when one applies. Generic SBAS and mixed products
// have none.
func (c Constellation) CountryCode() (string, bool) {
	switch c {
	case GPS, WAAS:
		return "US", true
	case Glonass, SDCM:
		return "RU", true
	case BeiDou, BDSBAS:
		return "CH", true
	case QZSS, MSAS:
		return "JP", true
	case Galileo, EGNOS:
		return "EU", true
	case IRNSS, GAGAN:
		return "IN", true
	case KASS:
		return "KR", true
	case ASBAS:
		return "SA", true
	case GBAS:
		return "UK", true
	case NSAS:
		return "NI", true
	case ASAL:
		return "AL", true
	case SPAN, AusNZ:
		return "AUS/NZ", true
	default:
		return "", false
	}
}

// MarshalText encodes the constellation as its canonical code, so JSON
// and YAML carry "BDS" rather than an opaque integer.
func (c Constellation) MarshalText() ([]byte, error) {
	if !c.known() {
		return nil, ErrUnknownConstellation
	}
	return []byte(c.Code()), nil
}

// UnmarshalText decodes through ParseConstellation, so any recognized
// alias is accepted.
func (c *Constellation) UnmarshalText(text []byte) error {
	parsed, err := ParseConstellation(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseConstellation is the single normalization entry point for
// constellation text. It accepts RINEX single letters, canonical codes,
// full names and recognized aliases, case-insensitively, and collapses
// them onto one tag per physical system: "BeiDou", "BDS" and "C" all
// yield BeiDou. Unrecognized input fails with ErrUnknownConstellation.
func ParseConstellation(s string) (Constellation, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))

	// Single-letter reciprocal of Letter().
	switch trimmed {
	case "g":
		return GPS, nil
	case "c":
		return BeiDou, nil
	case "e":
		return Galileo, nil
	case "r":
		return Glonass, nil
	case "j":
		return QZSS, nil
	case "i":
		return IRNSS, nil
	case "s":
		return SBAS, nil
	case "m":
		return Mixed, nil
	}

	// Substring matching tolerates display forms like "GPS (US)".
	// Order matters: more specific aliases come before the codes they
	// contain ("BDSBAS" before "BDS", "ASBAS" before "SBAS").
	switch {
	case strings.Contains(trimmed, "gps"):
		return GPS, nil
	case strings.Contains(trimmed, "glo"):
		return Glonass, nil
	case strings.Contains(trimmed, "beidou"):
		return BeiDou, nil
	case strings.Contains(trimmed, "bdsbas"):
		return BDSBAS, nil
	case strings.Contains(trimmed, "bds"):
		return BeiDou, nil
	case strings.Contains(trimmed, "galileo"):
		return Galileo, nil
	case strings.Contains(trimmed, "qzss"):
		return QZSS, nil
	case strings.Contains(trimmed, "irnss"):
		return IRNSS, nil
	case strings.Contains(trimmed, "nav/ic"), strings.Contains(trimmed, "navic"):
		return IRNSS, nil
	case strings.Contains(trimmed, "span"), strings.Contains(trimmed, "south-pan"),
		strings.Contains(trimmed, "south pan"):
		return SPAN, nil
	case strings.Contains(trimmed, "aus/nz"), strings.Contains(trimmed, "ausnz"):
		return AusNZ, nil
	case strings.Contains(trimmed, "australia"), strings.Contains(trimmed, "new-zealand"),
		strings.Contains(trimmed, "new zealand"):
		return SPAN, nil
	case strings.Contains(trimmed, "waas"):
		return WAAS, nil
	case strings.Contains(trimmed, "kass"):
		return KASS, nil
	case strings.Contains(trimmed, "egnos"):
		return EGNOS, nil
	case strings.Contains(trimmed, "gagan"):
		return GAGAN, nil
	case strings.Contains(trimmed, "gbas"):
		return GBAS, nil
	case strings.Contains(trimmed, "sdcm"):
		return SDCM, nil
	case strings.Contains(trimmed, "msas"):
		return MSAS, nil
	case strings.Contains(trimmed, "nsas"):
		return NSAS, nil
	case strings.Contains(trimmed, "asbas"):
		return ASBAS, nil
	case strings.Contains(trimmed, "asal"):
		return ASAL, nil
	case strings.Contains(trimmed, "gal"):
		return Galileo, nil
	case strings.Contains(trimmed, "mix"):
		return Mixed, nil
	case strings.Contains(trimmed, "sbas"):
		return SBAS, nil
	default:
		return GPS, fmt.Errorf("%w: %q", ErrUnknownConstellation, s)
	}
}

// ConstellationFromCountry returns the constellation operated by the
// country named by code, e.g. "US" or "USA" for GPS, "EU" or "Europe"
// for Galileo. Matching is case-insensitive and prefix-based.
func ConstellationFromCountry(code string) (Constellation, bool) {
	lower := strings.ToLower(code)
	switch {
	case strings.HasPrefix(lower, "us"):
		return GPS, true
	case strings.HasPrefix(lower, "eu"):
		return Galileo, true
	case strings.HasPrefix(lower, "ch"):
		return BeiDou, true
	case strings.HasPrefix(lower, "ru"):
		return Glonass, true
	case strings.HasPrefix(lower, "jp"), strings.HasPrefix(lower, "jap"):
		return QZSS, true
	case strings.HasPrefix(lower, "in"):
		return IRNSS, true
	default:
		return GPS, false
	}
}

// SBASFromCountry returns the augmentation service operated by the
// country named by code, e.g. "US" for WAAS or "KR"/"Korea" for KASS.
// Matching is case-insensitive and prefix-based.
func SBASFromCountry(code string) (Constellation, bool) {
	lower := strings.ToLower(code)
	switch {
	case strings.HasPrefix(lower, "us"):
		return WAAS, true
	case strings.HasPrefix(lower, "eu"):
		return EGNOS, true
	case strings.HasPrefix(lower, "ch"):
		return BDSBAS, true
	case strings.HasPrefix(lower, "ru"):
		return SDCM, true
	case strings.HasPrefix(lower, "jp"), strings.HasPrefix(lower, "jap"):
		return MSAS, true
	case strings.HasPrefix(lower, "in"):
		return GAGAN, true
	case strings.HasPrefix(lower, "uk"):
		return GBAS, true
	case strings.HasPrefix(lower, "sa"), strings.HasPrefix(lower, "south-af"):
		return ASBAS, true
	case strings.HasPrefix(lower, "kr"), strings.HasPrefix(lower, "kor"):
		return KASS, true
	case strings.HasPrefix(lower, "australia"), strings.HasPrefix(lower, "new-zea"),
		strings.HasPrefix(lower, "nz"):
		return SPAN, true
	default:
		return SBAS, false
	}
}
