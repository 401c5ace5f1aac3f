package gnss

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDesignator is returned for malformed COSPAR launch
// designators.
var ErrInvalidDesignator = errors.New("invalid COSPAR designator")

// COSPAR is an international launch designator of the form YYYY-NNNLLL:
// launch year, launch number within that year, and the sequential code
// of a piece in the launch. Values are immutable once built; the With*
// methods return updated copies.
type COSPAR struct {
	year   int
	launch int
	code   string
}

// firstLaunchYear bounds the plausible designator years: nothing was
// launched before Sputnik.
const firstLaunchYear = 1957

// NewCOSPAR builds a designator. The year must be a plausible 4-digit
// spacecraft-era year, the launch number must lie in 1..999 and the
// piece code must be one to three uppercase letters or digits;
// violations fail with ErrInvalidDesignator.
func NewCOSPAR(year, launch int, code string) (COSPAR, error) {
	if year < firstLaunchYear || year > 9999 {
		return COSPAR{}, fmt.Errorf("%w: year %d", ErrInvalidDesignator, year)
	}
	if launch < 1 || launch > 999 {
		return COSPAR{}, fmt.Errorf("%w: launch number %d", ErrInvalidDesignator, launch)
	}
	if len(code) < 1 || len(code) > 3 {
		return COSPAR{}, fmt.Errorf("%w: piece code %q", ErrInvalidDesignator, code)
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return COSPAR{}, fmt.Errorf("%w: piece code %q", ErrInvalidDesignator, code)
		}
	}
	return COSPAR{year: year, launch: launch, code: code}, nil
}

// Year returns the launch year.
func (c COSPAR) Year() int { return c.year }

// Launch returns the launch number within the year, in chronological
// order.
func (c COSPAR) Launch() int { return c.launch }

// Code returns the launch-piece sequential code.
func (c COSPAR) Code() string { return c.code }

// WithYear returns a copy with an updated launch year.
func (c COSPAR) WithYear(year int) (COSPAR, error) {
	return NewCOSPAR(year, c.launch, c.code)
}

// WithLaunch returns a copy with an updated launch number.
func (c COSPAR) WithLaunch(launch int) (COSPAR, error) {
	return NewCOSPAR(c.year, launch, c.code)
}

// WithCode returns a copy with an updated piece code.
func (c COSPAR) WithCode(code string) (COSPAR, error) {
	return NewCOSPAR(c.year, c.launch, code)
}

// String renders the designator, e.g. "2018-080A". The output parses
// back with ParseCOSPAR.
func (c COSPAR) String() string {
	return fmt.Sprintf("%04d-%03d%s", c.year, c.launch, c.code)
}

// Label resolves the designator against the embedded vehicle catalog,
// matching on year and launch number. A miss is not an error: it
// reports ok=false and Describe renders the explicit unresolved marker.
func (c COSPAR) Label() (string, bool) {
	for _, vehicle := range sbasVehicles() {
		if vehicle.COSPAR.year == c.year && vehicle.COSPAR.launch == c.launch {
			return vehicle.Name, true
		}
	}
	return "", false
}

// Describe renders the designator together with its catalog label when
// one resolves, e.g. "2014-011B (ASTRA-5B)". It is total: unknown
// designators render with an "(unresolved)" marker instead of failing.
func (c COSPAR) Describe() string {
	label, ok := c.Label()
	if !ok {
		return fmt.Sprintf("%s (unresolved)", c)
	}
	return fmt.Sprintf("%s (%s)", c, label)
}

// MarshalText encodes the designator in its YYYY-NNNLLL form.
func (c COSPAR) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes through ParseCOSPAR.
func (c *COSPAR) UnmarshalText(text []byte) error {
	parsed, err := ParseCOSPAR(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCOSPAR parses a designator like "2018-080A": a 4-digit year, a
// dash, a 3-digit launch number and the piece code.
func ParseCOSPAR(s string) (COSPAR, error) {
	if len(s) < 9 {
		return COSPAR{}, fmt.Errorf("%w: %q", ErrInvalidDesignator, s)
	}

	yearText, rem, found := strings.Cut(s, "-")
	if !found {
		return COSPAR{}, fmt.Errorf("%w: %q", ErrInvalidDesignator, s)
	}

	year, err := strconv.Atoi(yearText)
	if err != nil {
		return COSPAR{}, fmt.Errorf("%w: %q", ErrInvalidDesignator, s)
	}

	if len(rem) < 4 {
		return COSPAR{}, fmt.Errorf("%w: %q", ErrInvalidDesignator, s)
	}

	launch, err := strconv.Atoi(strings.TrimSpace(rem[:3]))
	if err != nil {
		return COSPAR{}, fmt.Errorf("%w: %q", ErrInvalidDesignator, s)
	}

	return NewCOSPAR(year, launch, strings.TrimSpace(rem[3:]))
}
