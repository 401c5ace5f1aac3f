package gnss

// TimeScale identifies a GNSS timekeeping system. It is a closed set:
// every constellation in the registry references exactly one of these.
type TimeScale int

const (
	// GPST is GPS Time, the reference scale for GPS and all SBAS services.
	GPST TimeScale = iota

	// GLONASST is Glonass Time.
	GLONASST

	// GST is Galileo System Time.
	GST

	// BDT is BeiDou Time.
	BDT

	// QZSST is QZSS Time.
	QZSST

	// IRNWT is the IRNSS/NavIC network time.
	IRNWT

	// UTC is used for multi-constellation (mixed) products, which carry
	// no single native scale.
	UTC
)

// String returns the display label for the time scale, e.g. "GPST".
func (ts TimeScale) String() string {
	switch ts {
	case GPST:
		return "GPST"
	case GLONASST:
		return "GLONASST"
	case GST:
		return "GST"
	case BDT:
		return "BDT"
	case QZSST:
		return "QZSST"
	case IRNWT:
		return "IRNWT"
	case UTC:
		return "UTC"
	default:
		return "UNKNOWN"
	}
}
