package ordmap

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error codes.  Every failure the package reports carries one of these.
const (
	// ErrInvalidReceiver: a method was called on something that was never
	// constructed as a Map (nil pointer, zero value, foreign value).
	ErrInvalidReceiver = "ERR_INVALID_RECEIVER"
	// ErrConstruction: Init on a nil receiver or on an already
	// constructed Map.
	ErrConstruction = "ERR_CONSTRUCTION"
	// ErrNotIterable: a bulk-construction source is not iterable, or one
	// of its elements is not entry-shaped.
	ErrNotIterable = "ERR_NOT_ITERABLE"
	// ErrNotAFunction: the bulk-construction adder is nil.
	ErrNotAFunction = "ERR_NOT_A_FUNCTION"
)

// MapError is the error type for every ordmap failure.
// Callers compare the Code field against the ERR_* strings.
type MapError struct {
	Code string
	Msg  string
}

func (e *MapError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return e.Code
}

func newErr(code, msg string) *MapError {
	return &MapError{Code: code, Msg: msg}
}

// CodeOf returns the code of the first *MapError in err's chain, or ""
// when there is none.
func CodeOf(err error) string {
	var me *MapError
	if errors.As(err, &me) {
		return me.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// invalidReceiver builds the error raised when method is invoked on
// something that is not a constructed Map.
func invalidReceiver(method string, v any) *MapError {
	return newErr(ErrInvalidReceiver,
		fmt.Sprintf("method Map.%s called on incompatible receiver %s", method, describe(v)))
}

func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case *Map:
		if x == nil {
			return "(*ordmap.Map)(nil)"
		}
		return "unconstructed *ordmap.Map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
