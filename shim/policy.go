package shim

import (
	"sync"

	"go.uber.org/zap"

	"github.com/map-protocol/ordmap"
)

// Policy selects an implementation by probing it.
type Policy struct {
	// Logger receives the selection decision.  Defaults to a no-op.
	Logger *zap.Logger
	// Probes defaults to DefaultProbes.
	Probes []Probe
	// Options configure the ordmap fallback.
	Options []ordmap.Option
}

// Select returns candidate when it passes every probe, and an ordmap
// factory otherwise, along with the names of the probes that failed.
// A nil candidate selects ordmap without probing.
func (p Policy) Select(candidate Factory) (Factory, []string) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	fallback := Ordered(p.Options...)
	if candidate == nil {
		log.Info("map implementation selected", zap.String("implementation", ImplOrdered))
		return fallback, nil
	}

	probes := p.Probes
	if probes == nil {
		probes = DefaultProbes
	}
	name := implementationOf(candidate)
	var failed []string
	for _, probe := range probes {
		if !probe.Run(candidate) {
			log.Debug("capability probe failed",
				zap.String("implementation", name),
				zap.String("probe", probe.Name))
			failed = append(failed, probe.Name)
		}
	}
	if len(failed) > 0 {
		log.Info("map implementation selected",
			zap.String("implementation", ImplOrdered),
			zap.String("rejected", name),
			zap.Strings("failed_probes", failed))
		return fallback, failed
	}
	log.Info("map implementation selected", zap.String("implementation", name))
	return candidate, nil
}

func implementationOf(f Factory) (name string) {
	defer func() {
		if recover() != nil {
			name = "unknown"
		}
	}()
	return f().Implementation()
}

var (
	mu      sync.Mutex
	current Factory
)

// Install runs p.Select on candidate and makes the result the process
// default used by NewContainer.
func Install(p Policy, candidate Factory) Factory {
	f, _ := p.Select(candidate)
	mu.Lock()
	defer mu.Unlock()
	current = f
	return f
}

// NewContainer builds a container from the installed factory, or an
// ordmap container when nothing is installed.
func NewContainer() Container {
	mu.Lock()
	f := current
	mu.Unlock()
	if f == nil {
		f = Ordered()
	}
	return f()
}

// Reset forgets the installed factory.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
}
