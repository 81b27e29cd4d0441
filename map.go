package ordmap

import (
	"iter"

	"go.uber.org/zap"
)

// Map is an insertion-ordered map.  The zero value is not usable: build
// one with New or From, or construct a zero Map in place with Init.
type Map struct {
	list  list
	index index
	size  int
	log   *zap.Logger
}

// New returns an empty map.
func New(opts ...Option) *Map {
	m := new(Map)
	m.construct(buildOptions(opts))
	return m
}

// From returns a map loaded from src in source order.  See AddEntries for
// the accepted sources.
func From(src any, opts ...Option) (*Map, error) {
	m := new(Map)
	if err := m.Init(src, opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// Init constructs m in place and loads src into it (src may be nil).
// Init fails with ErrConstruction when m is nil or already constructed.
func (m *Map) Init(src any, opts ...Option) error {
	if m == nil {
		return newErr(ErrConstruction, "constructor Map requires a non-nil receiver")
	}
	if m.constructed() {
		return newErr(ErrConstruction, "bad construction: Map is already initialized")
	}
	o := buildOptions(opts)
	m.construct(o)
	if src == nil {
		return nil
	}
	if err := AddEntries(m.set, src); err != nil {
		o.Logger.Debug("bulk load rejected", zap.Error(err))
		return err
	}
	return nil
}

func (m *Map) construct(o Options) {
	m.list = newList()
	m.index = newIndex(&m.list, o)
	m.size = 0
	m.log = o.Logger
}

func (m *Map) constructed() bool {
	return m.list.head != nil
}

// IsMap reports whether v is a constructed *Map.
func IsMap(v any) bool {
	m, ok := v.(*Map)
	return ok && m != nil && m.constructed()
}

// RequireMap returns v as a *Map, or an ErrInvalidReceiver error naming
// method when v is not a constructed *Map.
func RequireMap(v any, method string) (*Map, error) {
	if !IsMap(v) {
		return nil, invalidReceiver(method, v)
	}
	return v.(*Map), nil
}

func (m *Map) mustBeMap(method string) {
	if m == nil || !m.constructed() {
		panic(invalidReceiver(method, m))
	}
}

// Len returns the number of live entries.
func (m *Map) Len() int {
	m.mustBeMap("size")
	return m.size
}

// Get returns the value stored under key.  The second result is false
// when key is absent.
func (m *Map) Get(key any) (any, bool) {
	m.mustBeMap("get")
	if e := m.index.lookup(key); e != nil {
		return e.value, true
	}
	return nil, false
}

// Has reports whether key is present.
func (m *Map) Has(key any) bool {
	m.mustBeMap("has")
	return m.index.lookup(key) != nil
}

// Set stores value under key and returns m.  Updating an existing key
// keeps its position; a new key goes to the end.
func (m *Map) Set(key, value any) *Map {
	m.mustBeMap("set")
	m.set(key, value)
	return m
}

func (m *Map) set(key, value any) {
	if e := m.index.lookup(key); e != nil {
		e.value = value
		return
	}
	e := &entry{key: normalizeKey(key), value: value}
	m.list.insertAtTail(e)
	m.index.register(e)
	m.size++
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key any) bool {
	m.mustBeMap("delete")
	e := m.index.lookup(key)
	if e == nil {
		return false
	}
	m.index.unregister(e)
	m.list.unlink(e)
	m.size--
	return true
}

// Clear removes every entry.  Iterators in flight resume from the start
// of the (now empty) map.
func (m *Map) Clear() {
	m.mustBeMap("clear")
	n := m.list.clear()
	m.index.reset()
	m.size = 0
	m.log.Debug("map cleared", zap.Int("entries", n))
}

// Keys returns an iterator over the keys in insertion order.
func (m *Map) Keys() *Iterator {
	m.mustBeMap("keys")
	return newIterator(m, KindKeys)
}

// Values returns an iterator over the values in insertion order.
func (m *Map) Values() *Iterator {
	m.mustBeMap("values")
	return newIterator(m, KindValues)
}

// Entries returns an iterator over Entry pairs in insertion order.
func (m *Map) Entries() *Iterator {
	m.mustBeMap("entries")
	return newIterator(m, KindEntries)
}

// ForEach calls fn for every entry in insertion order.  fn may mutate m:
// entries deleted before they are reached are skipped, entries added
// during the walk are visited.
func (m *Map) ForEach(fn func(value, key any, m *Map)) {
	m.mustBeMap("forEach")
	it := newIterator(m, KindEntries)
	for {
		e := it.advance()
		if e == nil {
			return
		}
		fn(e.value, e.key, m)
	}
}

// Range calls fn for every entry in insertion order until fn returns
// false.  Mutation during the walk follows the ForEach rules.
func (m *Map) Range(fn func(key, value any) bool) {
	m.mustBeMap("range")
	it := newIterator(m, KindEntries)
	for e := it.advance(); e != nil; e = it.advance() {
		if !fn(e.key, e.value) {
			return
		}
	}
}

// All returns the default iteration over m's entries:
//
//	for k, v := range m.All() { ... }
func (m *Map) All() iter.Seq2[any, any] {
	m.mustBeMap("all")
	return func(yield func(any, any) bool) {
		m.Range(yield)
	}
}
