package gnss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCOSPAR(t *testing.T) {
	tests := []struct {
		input      string
		wantYear   int
		wantLaunch int
		wantCode   string
	}{
		{"2018-080A", 2018, 80, "A"},
		{"1996-068A", 1996, 68, "A"},
		{"2023-001001", 2023, 1, "001"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cospar, err := ParseCOSPAR(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, cospar.Year())
			assert.Equal(t, tt.wantLaunch, cospar.Launch())
			assert.Equal(t, tt.wantCode, cospar.Code())

			// Reciprocal formatting.
			assert.Equal(t, tt.input, cospar.String())
		})
	}
}

func TestParseCOSPARInvalid(t *testing.T) {
	for _, input := range []string{"", "2018", "2018-080", "201808A0", "YYYY-080A", "2018-0XYA"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCOSPAR(input)
			assert.ErrorIs(t, err, ErrInvalidDesignator)
		})
	}
}

func TestNewCOSPAR(t *testing.T) {
	cospar, err := NewCOSPAR(2023, 1, "001")
	require.NoError(t, err)
	assert.Equal(t, "2023-001001", cospar.String())

	tests := []struct {
		name   string
		year   int
		launch int
		code   string
	}{
		{"year before spaceflight", 1945, 1, "A"},
		{"five digit year", 10000, 1, "A"},
		{"zero launch number", 2023, 0, "A"},
		{"negative launch number", 2023, -4, "A"},
		{"launch number too large", 2023, 1000, "A"},
		{"empty piece code", 2023, 1, ""},
		{"piece code too long", 2023, 1, "ABCD"},
		{"lowercase piece code", 2023, 1, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCOSPAR(tt.year, tt.launch, tt.code)
			assert.ErrorIs(t, err, ErrInvalidDesignator)
		})
	}
}

// Formatting is total. The 2023-001 label ("GPS (US)") is a known gap
// in the catalog upstream; it must surface as an explicit unresolved
// result, never a fabricated label and never a failure.
func TestDescribeUnresolved(t *testing.T) {
	cospar, err := NewCOSPAR(2023, 1, "001")
	require.NoError(t, err)

	_, ok := cospar.Label()
	assert.False(t, ok)
	assert.Equal(t, "2023-001001 (unresolved)", cospar.Describe())
}

func TestDescribeCataloged(t *testing.T) {
	cospar, err := ParseCOSPAR("2014-011B")
	require.NoError(t, err)

	label, ok := cospar.Label()
	require.True(t, ok)
	assert.Equal(t, "ASTRA-5B", label)
	assert.Equal(t, "2014-011B (ASTRA-5B)", cospar.Describe())
}

func TestCOSPARBuilders(t *testing.T) {
	cospar, err := NewCOSPAR(2018, 80, "A")
	require.NoError(t, err)

	next, err := cospar.WithYear(2019)
	require.NoError(t, err)
	assert.Equal(t, "2019-080A", next.String())

	next, err = next.WithLaunch(7)
	require.NoError(t, err)
	assert.Equal(t, "2019-007A", next.String())

	next, err = next.WithCode("B")
	require.NoError(t, err)
	assert.Equal(t, "2019-007B", next.String())

	// Builders copy; the original is untouched.
	assert.Equal(t, "2018-080A", cospar.String())

	_, err = cospar.WithYear(1900)
	assert.ErrorIs(t, err, ErrInvalidDesignator)
}

func TestCOSPARText(t *testing.T) {
	cospar, err := ParseCOSPAR("2011-074A")
	require.NoError(t, err)

	b, err := cospar.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2011-074A", string(b))

	var decoded COSPAR
	require.NoError(t, decoded.UnmarshalText(b))
	assert.Equal(t, cospar, decoded)
}
