package gnss

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPRN is returned when a vehicle identifier is not a positive
// integer in the representable PRN range.
var ErrInvalidPRN = errors.New("invalid PRN number")

// ConstellationRef names a constellation either by its typed tag or by
// text. Both forms converge on the registry's normalization, so
// NewSV(BeiDou, 1) and NewSV(ConstellationName("BDS"), 1) build the
// same vehicle.
type ConstellationRef interface {
	resolveConstellation() (Constellation, error)
}

func (c Constellation) resolveConstellation() (Constellation, error) {
	if !c.known() {
		return GPS, ErrUnknownConstellation
	}
	return c, nil
}

// ConstellationName is the textual form of a ConstellationRef. Any
// alias recognized by ParseConstellation is accepted.
type ConstellationName string

func (n ConstellationName) resolveConstellation() (Constellation, error) {
	return ParseConstellation(string(n))
}

// SV identifies a space vehicle: a constellation paired with a PRN (or
// slot) number. The constellation is always stored in canonical form;
// writes go through SetConstellation so aliases collapse on assignment,
// not just on read.
type SV struct {
	constellation Constellation
	prn           uint8
}

// NewSV builds a vehicle from a constellation reference and a PRN
// number. The PRN must lie in 1..255, otherwise ErrInvalidPRN is
// returned; unrecognized constellation text propagates
// ErrUnknownConstellation.
func NewSV(ref ConstellationRef, prn int) (SV, error) {
	constellation, err := ref.resolveConstellation()
	if err != nil {
		return SV{}, err
	}
	if prn < 1 || prn > 255 {
		return SV{}, fmt.Errorf("%w: %d", ErrInvalidPRN, prn)
	}
	return SV{constellation: constellation, prn: uint8(prn)}, nil
}

// Constellation returns the canonical constellation tag.
func (sv SV) Constellation() Constellation {
	return sv.constellation
}

// PRN returns the vehicle number within its constellation. It is not
// affected by constellation reassignment.
func (sv SV) PRN() uint8 {
	return sv.prn
}

// SetConstellation reassigns the vehicle's constellation, normalizing
// through the registry. Assigning "BeiDou" and then reading the
// constellation code yields "BDS"; repeating the assignment is a no-op.
func (sv *SV) SetConstellation(ref ConstellationRef) error {
	constellation, err := ref.resolveConstellation()
	if err != nil {
		return err
	}
	sv.constellation = constellation
	return nil
}

// TimeScale returns the time scale this vehicle's signals are
// referenced to, via the constellation registry.
func (sv SV) TimeScale() TimeScale {
	return sv.constellation.TimeScale()
}

// IsBeiDouGEO reports whether this vehicle is one of the BeiDou
// geostationary satellites, which occupy the low and high PRN slots.
func (sv SV) IsBeiDouGEO() bool {
	return sv.constellation == BeiDou && (sv.prn < 6 || sv.prn > 58)
}

// LaunchDate returns the launch date for this vehicle when the catalog
// knows it. Coverage is limited to the SBAS vehicle catalog.
func (sv SV) LaunchDate() (time.Time, bool) {
	vehicle, ok := LookupSBASVehicle(sv.prn)
	if !ok {
		return time.Time{}, false
	}
	return vehicle.Launched, true
}

// Designation returns the vehicle name for cataloged SBAS satellites
// (e.g. "ASTRA-5B" for S23) and falls back to the short form otherwise.
func (sv SV) Designation() string {
	if sv.constellation.IsSBAS() {
		if vehicle, ok := LookupSBASVehicle(sv.prn); ok {
			return vehicle.Name
		}
	}
	return sv.String()
}

// String renders the standard short form: the RINEX constellation
// letter followed by the zero-padded PRN, e.g. "G01". The conventional
// two-digit width is used; FormatSV takes an explicit width.
func (sv SV) String() string {
	return FormatSV(sv, 2)
}

// FormatSV renders the short form with the given minimum PRN width.
// The width is a display policy, not part of the identifier: "G01" and
// "G001" parse back to the same vehicle.
func FormatSV(sv SV, width int) string {
	return fmt.Sprintf("%c%0*d", sv.constellation.Letter(), width, sv.prn)
}

// MarshalText encodes the vehicle in its short form.
func (sv SV) MarshalText() ([]byte, error) {
	return []byte(sv.String()), nil
}

// UnmarshalText decodes through ParseSV.
func (sv *SV) UnmarshalText(text []byte) error {
	parsed, err := ParseSV(string(text))
	if err != nil {
		return err
	}
	*sv = parsed
	return nil
}

// ParseSV parses a short-form vehicle identifier like "G01", "E13" or
// "C254". Whitespace padding around the PRN is tolerated ("G 1", "E4 ").
// Generic SBAS identifiers ("S23") are resolved to the concrete
// augmentation service when the vehicle catalog knows the PRN.
func ParseSV(s string) (SV, error) {
	if len(s) < 2 {
		return SV{}, fmt.Errorf("%w: %q", ErrInvalidPRN, s)
	}

	constellation, err := ParseConstellation(s[:1])
	if err != nil {
		return SV{}, err
	}

	prn, err := strconv.Atoi(strings.TrimSpace(s[1:]))
	if err != nil {
		return SV{}, fmt.Errorf("%w: %q", ErrInvalidPRN, s)
	}

	sv, err := NewSV(constellation, prn)
	if err != nil {
		return SV{}, err
	}

	if constellation.IsSBAS() {
		// Map SXX onto the concrete geo service operating that slot.
		// Catalog entries only carry valid constellations, so the
		// reassignment cannot fail.
		if vehicle, ok := LookupSBASVehicle(sv.prn); ok {
			sv.constellation = vehicle.Constellation
		}
	}

	return sv, nil
}
