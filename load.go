package ordmap

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/maps"
	"github.com/pkg/errors"
)

// Source is a pull iterator: Next returns values until a Done result.
// *Iterator is a Source.
type Source interface {
	Next() Result
}

// Closer is implemented by sources that hold resources.  AddEntries
// closes a source it stops reading before the end.
type Closer interface {
	Close() error
}

// AddEntries feeds every key/value pair of src to add, in source order.
//
// Accepted sources:
//
//   - nil: nothing to add
//   - *Map: its entries, read directly
//   - string: each rune is an element (and is not a pair, so any
//     non-empty string is rejected)
//   - []Entry, []*Entry, [][2]any, []any, a gods lists.List, or any other
//     slice or array: each element must be pair-shaped
//   - a gods maps.Map: its Keys() order
//   - iter.Seq2[any, any]: pairs as yielded
//   - iter.Seq[any] and Source: each element must be pair-shaped
//
// Pair-shaped means Entry, a non-nil *Entry, [2]any, or a slice/array
// whose index 0 is the key and index 1 the value (missing positions read
// as Undefined).  Anything else fails with ErrNotIterable.  A nil add
// fails with ErrNotAFunction.
func AddEntries(add func(key, value any), src any) error {
	if add == nil {
		return newErr(ErrNotAFunction, "entry adder is not a function")
	}
	switch s := src.(type) {
	case nil:
		return nil
	case *Map:
		if s == nil || !s.constructed() {
			return invalidReceiver("forEach", s)
		}
		s.ForEach(func(value, key any, _ *Map) {
			add(key, value)
		})
		return nil
	case string:
		i := 0
		for _, r := range s {
			if err := addPair(add, string(r), i); err != nil {
				return err
			}
			i++
		}
		return nil
	case []Entry:
		for _, e := range s {
			add(e.Key, e.Value)
		}
		return nil
	case []*Entry:
		for i, e := range s {
			if err := addPair(add, e, i); err != nil {
				return err
			}
		}
		return nil
	case [][2]any:
		for _, p := range s {
			add(p[0], p[1])
		}
		return nil
	case []any:
		for i, elem := range s {
			if err := addPair(add, elem, i); err != nil {
				return err
			}
		}
		return nil
	case lists.List:
		for i := 0; i < s.Size(); i++ {
			elem, _ := s.Get(i)
			if err := addPair(add, elem, i); err != nil {
				return err
			}
		}
		return nil
	case maps.Map:
		for _, k := range s.Keys() {
			v, _ := s.Get(k)
			add(k, v)
		}
		return nil
	case iter.Seq2[any, any]:
		return addSeq2(add, s)
	case func(func(any, any) bool):
		return addSeq2(add, s)
	case iter.Seq[any]:
		return addSeq(add, s)
	case func(func(any) bool):
		return addSeq(add, s)
	case Source:
		return addSource(add, s)
	}

	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := addPair(add, v.Index(i).Interface(), i); err != nil {
				return err
			}
		}
		return nil
	}
	return newErr(ErrNotIterable, fmt.Sprintf("%T is not iterable", src))
}

func addSeq2(add func(key, value any), seq iter.Seq2[any, any]) error {
	for k, v := range seq {
		add(k, v)
	}
	return nil
}

// addSeq stops pulling on the first malformed element; breaking out of
// the range lets the producer run its cleanup before the error returns.
func addSeq(add func(key, value any), seq iter.Seq[any]) error {
	i := 0
	for elem := range seq {
		if err := addPair(add, elem, i); err != nil {
			return err
		}
		i++
	}
	return nil
}

// addSource drains src.  If it stops early, for a malformed element or
// because add panicked, src is closed first; the original failure wins
// over any close error.
func addSource(add func(key, value any), src Source) error {
	finished := false
	defer func() {
		if finished {
			return
		}
		if c, ok := src.(Closer); ok {
			_ = c.Close()
		}
	}()
	for i := 0; ; i++ {
		r := src.Next()
		if r.Done {
			finished = true
			return nil
		}
		if err := addPair(add, r.Value, i); err != nil {
			return err
		}
	}
}

func addPair(add func(key, value any), elem any, pos int) error {
	k, v, ok := pairOf(elem)
	if !ok {
		err := newErr(ErrNotIterable, fmt.Sprintf("iterator value %v is not an entry object", elem))
		return errors.Wrapf(err, "entry %d", pos)
	}
	add(k, v)
	return nil
}

// pairOf extracts key and value from a pair-shaped element.
func pairOf(elem any) (key, value any, ok bool) {
	switch p := elem.(type) {
	case Entry:
		return p.Key, p.Value, true
	case *Entry:
		if p == nil {
			return nil, nil, false
		}
		return p.Key, p.Value, true
	case [2]any:
		return p[0], p[1], true
	case []any:
		return at(p, 0), at(p, 1), true
	case nil, string:
		return nil, nil, false
	}
	v := reflect.ValueOf(elem)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		key, value = Undefined{}, Undefined{}
		if v.Len() > 0 {
			key = v.Index(0).Interface()
		}
		if v.Len() > 1 {
			value = v.Index(1).Interface()
		}
		return key, value, true
	}
	return nil, nil, false
}

func at(s []any, i int) any {
	if i < len(s) {
		return s[i]
	}
	return Undefined{}
}
