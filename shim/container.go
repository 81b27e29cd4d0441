// Package shim decides which map implementation a program should use.
//
// It probes a candidate implementation (by default the gods
// linkedhashmap, an ordered map backed by a plain Go map) for the
// behaviour ordmap guarantees, and falls back to ordmap when a probe
// fails.  The package only talks to ordmap through its public
// constructor and type-identity check.
package shim

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/map-protocol/ordmap"
)

// Container is the surface shared by every implementation the shim can
// hand out.
type Container interface {
	Get(key any) (any, bool)
	Has(key any) bool
	Store(key, value any)
	Delete(key any) bool
	Clear()
	Len() int
	// Range visits entries in insertion order until fn returns false.
	Range(fn func(key, value any) bool)
	// Implementation names the backing map.
	Implementation() string
}

// Factory builds empty containers.
type Factory func() Container

const (
	ImplOrdered = "ordmap"
	ImplNative  = "gods/linkedhashmap"
)

// Ordered returns a factory for ordmap containers.
func Ordered(opts ...ordmap.Option) Factory {
	return func() Container {
		return &orderedContainer{m: ordmap.New(opts...)}
	}
}

// Native returns a factory for gods linkedhashmap containers.
func Native() Factory {
	return func() Container {
		return &nativeContainer{m: linkedhashmap.New()}
	}
}

// Wrap adapts an existing *ordmap.Map.
func Wrap(v any) (Container, error) {
	m, err := ordmap.RequireMap(v, "wrap")
	if err != nil {
		return nil, err
	}
	return &orderedContainer{m: m}, nil
}

// Load bulk-loads src into c with ordmap's loader, so every container
// accepts the same sources as ordmap.From.
func Load(c Container, src any) error {
	var add func(key, value any)
	if c != nil {
		add = c.Store
	}
	return ordmap.AddEntries(add, src)
}

type orderedContainer struct {
	m *ordmap.Map
}

func (c *orderedContainer) Get(key any) (any, bool)            { return c.m.Get(key) }
func (c *orderedContainer) Has(key any) bool                   { return c.m.Has(key) }
func (c *orderedContainer) Store(key, value any)               { c.m.Set(key, value) }
func (c *orderedContainer) Delete(key any) bool                { return c.m.Delete(key) }
func (c *orderedContainer) Clear()                             { c.m.Clear() }
func (c *orderedContainer) Len() int                           { return c.m.Len() }
func (c *orderedContainer) Range(fn func(key, value any) bool) { c.m.Range(fn) }
func (c *orderedContainer) Implementation() string             { return ImplOrdered }

// Map returns the wrapped ordmap.
func (c *orderedContainer) Map() *ordmap.Map { return c.m }

type nativeContainer struct {
	m *linkedhashmap.Map
}

func (c *nativeContainer) Get(key any) (any, bool) { return c.m.Get(key) }

func (c *nativeContainer) Has(key any) bool {
	_, ok := c.m.Get(key)
	return ok
}

func (c *nativeContainer) Store(key, value any) { c.m.Put(key, value) }

func (c *nativeContainer) Delete(key any) bool {
	if _, ok := c.m.Get(key); !ok {
		return false
	}
	c.m.Remove(key)
	return true
}

func (c *nativeContainer) Clear()   { c.m.Clear() }
func (c *nativeContainer) Len() int { return c.m.Size() }

// Range walks a snapshot of the key order, so entries added during the
// walk are not visited.
func (c *nativeContainer) Range(fn func(key, value any) bool) {
	for _, k := range c.m.Keys() {
		v, ok := c.m.Get(k)
		if !ok {
			continue
		}
		if !fn(k, v) {
			return
		}
	}
}

func (c *nativeContainer) Implementation() string { return ImplNative }
