// Package gnss models GNSS identities: constellations and their time
// scales, space vehicles (SV), COSPAR launch designators and DOMES site
// numbers.
//
// The package is a pure value library. All reference data (the
// constellation registry, the SBAS vehicle catalog and the coverage
// map) is embedded, decoded once, and immutable afterwards, so every
// value and lookup is safe for concurrent use without locking.
//
// Textual input is normalized through a single entry point per type:
// ParseConstellation collapses every recognized alias onto one
// canonical tag ("BeiDou", "BDS" and "C" are the same system), and the
// SV and COSPAR parsers build on it.
package gnss
