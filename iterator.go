package ordmap

import "iter"

// Iterator walks a Map's entries lazily.  Any number of iterators may be
// open on one map; each keeps its own cursor and none of them owns the
// entries.
//
// The cursor starts on the list head.  Next steps back off tombstoned
// entries (so deleting the current entry does not lose the place), then
// forward to the next live entry.  Reaching the head again exhausts the
// iterator for good: later insertions are not seen.
type Iterator struct {
	cursor *entry // nil once exhausted
	head   *entry
	kind   Kind
}

func newIterator(m *Map, kind Kind) *Iterator {
	return &Iterator{cursor: m.list.head, head: m.list.head, kind: kind}
}

// Next returns the next projected value, or a Done result.
func (it *Iterator) Next() Result {
	if it == nil || it.head == nil {
		panic(newErr(ErrInvalidReceiver, "not a map iterator"))
	}
	e := it.advance()
	if e == nil {
		return Result{Done: true}
	}
	return Result{Value: it.project(e)}
}

// advance moves the cursor to the next live entry and returns it, or
// returns nil and exhausts the iterator.
func (it *Iterator) advance() *entry {
	e := it.cursor
	if e == nil {
		return nil
	}
	for e.isRemoved() && e != it.head {
		e = e.prev
	}
	for e.next != it.head {
		e = e.next
		if !e.isRemoved() {
			it.cursor = e
			return e
		}
	}
	it.cursor = nil
	return nil
}

func (it *Iterator) project(e *entry) any {
	switch it.kind {
	case KindKeys:
		return e.key
	case KindValues:
		return e.value
	default:
		return Entry{Key: e.key, Value: e.value}
	}
}

// Kind returns what the iterator yields.
func (it *Iterator) Kind() Kind {
	return it.kind
}

// Iterator returns it.  An iterator is its own iterable, so it can be
// handed to anything that pulls from a Source.
func (it *Iterator) Iterator() *Iterator {
	return it
}

// Seq returns the remaining values as a range-over-func sequence.
// Values consumed through Seq are consumed from it.
func (it *Iterator) Seq() iter.Seq[any] {
	return func(yield func(any) bool) {
		for r := it.Next(); !r.Done; r = it.Next() {
			if !yield(r.Value) {
				return
			}
		}
	}
}
