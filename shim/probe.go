package shim

import "math"

// Probe checks one behaviour on a fresh container.
type Probe struct {
	Name  string
	Check func(c Container) bool
}

// Run reports whether the probe passes on a container from f.  A probe
// that panics fails.
func (p Probe) Run(f Factory) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return p.Check(f())
}

// DefaultProbes is the full capability check.
var DefaultProbes = []Probe{
	{Name: "same-value-zero", Check: usesSameValueZero},
	{Name: "nan-keys", Check: handlesNaN},
	{Name: "update-in-place", Check: updatesInPlace},
	{Name: "iteration-finishes", Check: iterationFinishes},
	{Name: "clears-completely", Check: clearsCompletely},
	{Name: "insertion-order", Check: preservesOrder},
}

// usesSameValueZero stores under -0 on a map that already holds more
// than four entries and reads back through both zeros.
func usesSameValueZero(c Container) bool {
	for i := 1; i <= 4; i++ {
		c.Store(float64(i), 0)
	}
	c.Store(math.Copysign(0, -1), "zero")
	v1, ok1 := c.Get(0.0)
	v2, ok2 := c.Get(math.Copysign(0, -1))
	return ok1 && ok2 && v1 == "zero" && v2 == "zero" && c.Has(0.0) && c.Len() == 5
}

func handlesNaN(c Container) bool {
	c.Store(math.NaN(), "nan")
	c.Store(math.NaN(), "nan again")
	v, ok := c.Get(math.NaN())
	return ok && v == "nan again" && c.Len() == 1
}

func updatesInPlace(c Container) bool {
	c.Store("k", 1)
	c.Store("k", 2)
	v, ok := c.Get("k")
	return ok && v == 2 && c.Len() == 1
}

func iterationFinishes(c Container) bool {
	visited := false
	c.Range(func(any, any) bool {
		visited = true
		return true
	})
	return !visited
}

func clearsCompletely(c Container) bool {
	c.Store(1, 2)
	c.Store(5, 2)
	c.Clear()
	return c.Len() == 0 && !c.Has(5)
}

// preservesOrder: a re-inserted key moves to the end, an updated key
// does not move.
func preservesOrder(c Container) bool {
	c.Store("a", 1)
	c.Store("b", 2)
	c.Store("c", 3)
	c.Delete("a")
	c.Store("a", 4)
	c.Store("b", 5)
	var got []any
	c.Range(func(k, _ any) bool {
		got = append(got, k)
		return true
	})
	return len(got) == 3 && got[0] == "b" && got[1] == "c" && got[2] == "a"
}
