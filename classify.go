package ordmap

import (
	"math"
	"reflect"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// scalarTag returns the tier-1 tag for key, or ok=false when key is not
// one of the predeclared scalar kinds.
//
// Numbers of every kind share one domain: integral values render as
// decimal integers (so -0.0 renders "0"), other floats in shortest 'g'
// form.
func scalarTag(key any) (tag string, ok bool) {
	switch k := key.(type) {
	case nil:
		return tagNull, true
	case Undefined:
		return tagUndefined, true
	case string:
		return textPrefix + k, true
	case bool:
		if k {
			return tagTrue, true
		}
		return tagFalse, true
	case int:
		return signedTag(k), true
	case int8:
		return signedTag(k), true
	case int16:
		return signedTag(k), true
	case int32:
		return signedTag(k), true
	case int64:
		return signedTag(k), true
	case uint:
		return unsignedTag(k), true
	case uint8:
		return unsignedTag(k), true
	case uint16:
		return unsignedTag(k), true
	case uint32:
		return unsignedTag(k), true
	case uint64:
		return unsignedTag(k), true
	case uintptr:
		return unsignedTag(k), true
	case float32:
		return floatTag(k), true
	case float64:
		return floatTag(k), true
	}
	return "", false
}

func signedTag[T constraints.Signed](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func unsignedTag[T constraints.Unsigned](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

const (
	two63 = 1 << 63
	two64 = 1 << 64
)

func floatTag[T constraints.Float](v T) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return tagNaN
	case math.IsInf(f, 1):
		return tagPosInf
	case math.IsInf(f, -1):
		return tagNegInf
	}
	if f == math.Trunc(f) {
		// Integral: match the integer kinds exactly.
		if f >= 0 && f < two64 {
			return strconv.FormatUint(uint64(f), 10)
		}
		if f < 0 && f >= -two63 {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// classify decides the tier of key.  It is pure: the same key always
// lands in the same tier.
func classify(key any) (tier, string) {
	if tag, ok := scalarTag(key); ok {
		return tierScalar, tag
	}
	if hashable(key) {
		return tierIdentity, ""
	}
	return tierScan, ""
}

// hashable reports whether key can live in a map[any]: its dynamic value
// must be comparable and equal to itself (a struct holding NaN is not).
func hashable(key any) bool {
	if !reflect.ValueOf(key).Comparable() {
		return false
	}
	return key == key
}

// normalizeKey coerces a float zero to positive zero so the stored key
// never carries the sign.
func normalizeKey(key any) any {
	switch k := key.(type) {
	case float64:
		if k == 0 {
			return float64(0)
		}
	case float32:
		if k == 0 {
			return float32(0)
		}
	}
	return key
}

// sameValueZero is the key equality: identical, or both NaN, or both
// zero regardless of sign.  Scalars compare by tag across numeric kinds;
// anything else must share a dynamic type and is compared structurally,
// with reference kinds compared by address.
func sameValueZero(a, b any) bool {
	ta, aScalar := scalarTag(a)
	tb, bScalar := scalarTag(b)
	if aScalar || bScalar {
		return aScalar && bScalar && ta == tb
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Func {
		// The code pointer is shared by every closure of one literal; the
		// interface data word points at the closure itself.
		return dataWord(a) == dataWord(b)
	}
	return sameValue(va, vb)
}

// dataWord returns the data pointer of an interface value.
func dataWord(v any) unsafe.Pointer {
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&v))[1]
}

func sameValue(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return sameFloat(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := a.Complex(), b.Complex()
		return sameFloat(real(ca), real(cb)) && sameFloat(imag(ca), imag(cb))
	case reflect.String:
		return a.String() == b.String()
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !sameValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !sameValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		ea, eb := a.Elem(), b.Elem()
		return ea.Type() == eb.Type() && sameValue(ea, eb)
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len() && a.Cap() == b.Cap()
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	}
	return false
}

func sameFloat(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}
