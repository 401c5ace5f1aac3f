package gnss

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidDOMES is returned for malformed DOMES site numbers.
var ErrInvalidDOMES = errors.New("invalid DOMES number")

// TrackingPoint is the kind of reference point a DOMES number
// designates at a tracking site.
type TrackingPoint int

const (
	// Monument is a ground marker ('M' in the DOMES number).
	Monument TrackingPoint = iota

	// Instrument is an instrument reference point ('S').
	Instrument
)

// Letter returns the single-letter DOMES encoding of the point kind.
func (p TrackingPoint) Letter() rune {
	if p == Instrument {
		return 'S'
	}
	return 'M'
}

// String returns the readable name of the point kind.
func (p TrackingPoint) String() string {
	if p == Instrument {
		return "Instrument"
	}
	return "Monument"
}

// DOMES is an IERS site identifier of the form AAASSPNNN: a 3-digit
// area code, a 2-digit site number within the area, the tracking-point
// letter and a 3-digit sequential number, e.g. "10002M006".
type DOMES struct {
	// Area is the 3-digit geographic area code.
	Area uint16

	// Site is the site number within the area.
	Site uint8

	// Point designates the kind of reference point.
	Point TrackingPoint

	// Sequential is the point's sequential number at the site.
	Sequential uint16
}

// NewDOMES builds a site number, checking that each field fits its
// fixed-width slot in the printed form.
func NewDOMES(area uint16, site uint8, point TrackingPoint, sequential uint16) (DOMES, error) {
	if area > 999 {
		return DOMES{}, fmt.Errorf("%w: area %d", ErrInvalidDOMES, area)
	}
	if site > 99 {
		return DOMES{}, fmt.Errorf("%w: site %d", ErrInvalidDOMES, site)
	}
	if sequential > 999 {
		return DOMES{}, fmt.Errorf("%w: sequential %d", ErrInvalidDOMES, sequential)
	}
	return DOMES{Area: area, Site: site, Point: point, Sequential: sequential}, nil
}

// String renders the 9-character DOMES form, e.g. "10002M006". The
// output parses back with ParseDOMES.
func (d DOMES) String() string {
	return fmt.Sprintf("%03d%02d%c%03d", d.Area, d.Site, d.Point.Letter(), d.Sequential)
}

// ParseDOMES parses a 9-character DOMES site number like "10002M006".
func ParseDOMES(s string) (DOMES, error) {
	if len(s) != 9 {
		return DOMES{}, fmt.Errorf("%w: %q", ErrInvalidDOMES, s)
	}

	area, err := strconv.ParseUint(s[:3], 10, 16)
	if err != nil {
		return DOMES{}, fmt.Errorf("%w: %q", ErrInvalidDOMES, s)
	}

	site, err := strconv.ParseUint(s[3:5], 10, 8)
	if err != nil {
		return DOMES{}, fmt.Errorf("%w: %q", ErrInvalidDOMES, s)
	}

	var point TrackingPoint
	switch s[5] {
	case 'M':
		point = Monument
	case 'S':
		point = Instrument
	default:
		return DOMES{}, fmt.Errorf("%w: tracking point %q", ErrInvalidDOMES, s[5:6])
	}

	sequential, err := strconv.ParseUint(s[6:], 10, 16)
	if err != nil {
		return DOMES{}, fmt.Errorf("%w: %q", ErrInvalidDOMES, s)
	}

	return DOMES{
		Area:       uint16(area),
		Site:       uint8(site),
		Point:      point,
		Sequential: uint16(sequential),
	}, nil
}
