package ordmap

const Version = "1.0"

// Scalar tag markers.  A text key is tagged textPrefix+key; the prefix
// byte never starts a stringified number, boolean or absent marker, so
// "1" (text) and 1 (number) get distinct tags.
const (
	textPrefix   = "$"
	tagNull      = "null"
	tagUndefined = "undefined"
	tagTrue      = "true"
	tagFalse     = "false"
	tagNaN       = "NaN"
	tagPosInf    = "+Inf"
	tagNegInf    = "-Inf"
)

// tier is the lookup strategy a key is dispatched to.
type tier uint8

const (
	tierScalar   tier = iota + 1 // string-keyed table of scalar tags
	tierIdentity                 // host map keyed by the value itself
	tierScan                     // linear walk of the entry list
)

func (t tier) String() string {
	switch t {
	case tierScalar:
		return "scalar"
	case tierIdentity:
		return "identity"
	case tierScan:
		return "scan"
	default:
		return "unknown"
	}
}
