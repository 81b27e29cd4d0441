package ordmap

// index maps keys to their live entries.  A key lives in exactly one
// tier, chosen by classify and the map's options; a disabled tier sends
// its keys to the list scan.
type index struct {
	scalar   map[string]*entry // nil when disabled
	identity map[any]*entry    // nil when disabled
	list     *list

	scalarOn   bool
	identityOn bool
	capHint    int
}

func newIndex(l *list, o Options) index {
	ix := index{
		list:       l,
		scalarOn:   o.ScalarIndex,
		identityOn: o.IdentityIndex,
		capHint:    o.CapacityHint,
	}
	ix.reset()
	return ix
}

// route classifies key and downgrades it to the scan tier when its own
// tier is switched off.
func (ix *index) route(key any) (tier, string) {
	t, tag := classify(key)
	switch {
	case t == tierScalar && !ix.scalarOn:
		return tierScan, ""
	case t == tierIdentity && !ix.identityOn:
		return tierScan, ""
	}
	return t, tag
}

// lookup returns the live entry for key, or nil.
func (ix *index) lookup(key any) *entry {
	t, tag := ix.route(key)
	switch t {
	case tierScalar:
		return ix.scalar[tag]
	case tierIdentity:
		return ix.identity[key]
	default:
		return ix.list.find(key)
	}
}

// register records e under the tier of its key.  The scan tier needs
// nothing: the list is its index.
func (ix *index) register(e *entry) {
	e.tier, e.tag = ix.route(e.key)
	switch e.tier {
	case tierScalar:
		ix.scalar[e.tag] = e
	case tierIdentity:
		ix.identity[e.key] = e
	}
}

// unregister drops e's record.  Must run before e is tombstoned, while
// e.key still holds the user key.
func (ix *index) unregister(e *entry) {
	switch e.tier {
	case tierScalar:
		delete(ix.scalar, e.tag)
	case tierIdentity:
		delete(ix.identity, e.key)
	}
}

// reset empties every enabled tier.
func (ix *index) reset() {
	ix.scalar, ix.identity = nil, nil
	if ix.scalarOn {
		ix.scalar = make(map[string]*entry, ix.capHint)
	}
	if ix.identityOn {
		ix.identity = make(map[any]*entry, ix.capHint)
	}
}
