package ordmap

// tombstoneMark is not zero-sized, so removed has an address of its own.
type tombstoneMark struct{ _ byte }

// removed replaces the key and value of a tombstoned entry.  It points to
// an unexported type, so no user value can ever equal it.
var removed = &tombstoneMark{}

// entry is one node of the ordered list.  The list owns every entry;
// next and prev are positional links only.
type entry struct {
	key   any
	value any
	tier  tier
	tag   string // scalar tag; empty for other tiers

	next *entry
	prev *entry
}

func (e *entry) isRemoved() bool {
	return e.key == removed
}

func (e *entry) tombstone() {
	e.key = removed
	e.value = removed
	e.tag = ""
}

// list is a circular doubly-linked list with a permanent head sentinel.
// Following next from head visits the live entries in insertion order
// and comes back to head.
type list struct {
	head *entry
}

func newList() list {
	head := &entry{}
	head.next = head
	head.prev = head
	return list{head: head}
}

// insertAtTail links e between the last live entry and head.
func (l *list) insertAtTail(e *entry) {
	e.next = l.head
	e.prev = l.head.prev
	e.prev.next = e
	e.next.prev = e
}

// unlink tombstones e and relinks its neighbours around it.  e keeps its
// own next/prev so an iterator parked on it can still find its way back.
func (l *list) unlink(e *entry) {
	e.tombstone()
	e.prev.next = e.next
	e.next.prev = e.prev
}

// clear tombstones every live entry and empties the list.  Each entry is
// pointed at head so parked iterators resume from the (new) start.
// Returns the number of entries tombstoned.
func (l *list) clear() int {
	n := 0
	for e := l.head.next; e != l.head; {
		next := e.next
		e.tombstone()
		e.next = l.head
		e.prev = l.head
		e = next
		n++
	}
	l.head.next = l.head
	l.head.prev = l.head
	return n
}

// find walks the list for a tier-3 entry equal to key.
func (l *list) find(key any) *entry {
	for e := l.head.next; e != l.head; e = e.next {
		if e.tier == tierScan && sameValueZero(e.key, key) {
			return e
		}
	}
	return nil
}
