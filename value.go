// Package ordmap implements an insertion-ordered map with live iteration.
//
// A Map keeps its entries on a circular doubly-linked list in the order
// they were first inserted and finds them through a tiered index:
//
//   - scalar keys (strings, booleans, every integer and float kind, nil
//     and Undefined) are reduced to a string tag and kept in a plain
//     string-keyed table;
//   - other comparable keys (pointers, channels, structs, arrays, named
//     types) go into a Go map keyed by the value itself;
//   - keys a Go map cannot hold (slices, maps, funcs, values holding a
//     NaN) are found by walking the list.
//
// Keys compare with SameValueZero: NaN equals NaN, and +0 equals -0.
// All numeric kinds share one number domain, so 1, int8(1) and 1.0 are
// the same key.
//
// Iterators stay valid while the map is mutated.  Deleted entries are
// tombstoned rather than freed, so an iterator parked on one can walk
// back to a live position; entries inserted behind the cursor are still
// visited; an exhausted iterator stays exhausted.
//
// A Map is not safe for concurrent use.
package ordmap

// Undefined is the second absent-value marker, distinct from nil.  It is
// a valid key and value, and fills the missing half of a short pair
// during bulk construction.
type Undefined struct{}

func (Undefined) String() string { return "undefined" }

// Entry is a key/value pair.  It is the value yielded by an entries
// iterator and one of the pair shapes accepted by bulk construction.
type Entry struct {
	Key   any
	Value any
}

// Result is one step of an Iterator: a projected value, or Done.
type Result struct {
	Value any
	Done  bool
}

// Kind selects what an Iterator yields.
type Kind uint8

const (
	KindKeys    Kind = iota // entry keys
	KindValues              // entry values
	KindEntries             // Entry{Key, Value} pairs
)

func (k Kind) String() string {
	switch k {
	case KindKeys:
		return "key"
	case KindValues:
		return "value"
	case KindEntries:
		return "key+value"
	default:
		return "unknown"
	}
}
