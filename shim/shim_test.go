package shim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/map-protocol/ordmap"
	"github.com/map-protocol/ordmap/shim"
)

func probeNames(probes []shim.Probe) []string {
	names := make([]string, len(probes))
	for i, p := range probes {
		names[i] = p.Name
	}
	return names
}

func rangeKeys(c shim.Container) []any {
	var keys []any
	c.Range(func(k, _ any) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

var _ = Describe("Probes", func() {
	It("passes every probe on ordmap", func() {
		for _, p := range shim.DefaultProbes {
			Expect(p.Run(shim.Ordered())).To(BeTrue(), p.Name)
		}
	})

	It("fails only nan-keys on the gods linkedhashmap", func() {
		var failed []string
		for _, p := range shim.DefaultProbes {
			if !p.Run(shim.Native()) {
				failed = append(failed, p.Name)
			}
		}
		Expect(failed).To(Equal([]string{"nan-keys"}))
	})

	It("treats a panicking probe as a failure", func() {
		p := shim.Probe{Name: "boom", Check: func(shim.Container) bool { panic("boom") }}
		Expect(p.Run(shim.Ordered())).To(BeFalse())
	})

	It("runs each probe on a fresh container", func() {
		built := 0
		f := func() shim.Container {
			built++
			return shim.Ordered()()
		}
		for _, p := range shim.DefaultProbes {
			p.Run(f)
		}
		Expect(built).To(Equal(len(shim.DefaultProbes)))
	})
})

var _ = Describe("Policy", func() {
	var (
		logs   *observer.ObservedLogs
		policy shim.Policy
	)

	BeforeEach(func() {
		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)
		policy = shim.Policy{Logger: zap.New(core)}
	})

	It("rejects a candidate that fails a probe", func() {
		f, failed := policy.Select(shim.Native())
		Expect(failed).To(ConsistOf("nan-keys"))
		Expect(f().Implementation()).To(Equal(shim.ImplOrdered))

		selected := logs.FilterMessage("map implementation selected").All()
		Expect(selected).To(HaveLen(1))
		Expect(selected[0].ContextMap()).To(HaveKeyWithValue("rejected", shim.ImplNative))
		Expect(logs.FilterMessage("capability probe failed").Len()).To(Equal(1))
	})

	It("keeps a candidate that passes every probe", func() {
		f, failed := policy.Select(shim.Ordered())
		Expect(failed).To(BeEmpty())
		Expect(f().Implementation()).To(Equal(shim.ImplOrdered))
	})

	It("accepts the native map when the NaN probe is skipped", func() {
		var probes []shim.Probe
		for _, p := range shim.DefaultProbes {
			if p.Name != "nan-keys" {
				probes = append(probes, p)
			}
		}
		policy.Probes = probes
		Expect(probeNames(policy.Probes)).NotTo(ContainElement("nan-keys"))

		f, failed := policy.Select(shim.Native())
		Expect(failed).To(BeEmpty())
		Expect(f().Implementation()).To(Equal(shim.ImplNative))
	})

	It("selects ordmap without probing when there is no candidate", func() {
		f, failed := policy.Select(nil)
		Expect(failed).To(BeNil())
		Expect(f().Implementation()).To(Equal(shim.ImplOrdered))
		Expect(logs.FilterMessage("capability probe failed").Len()).To(BeZero())
	})

	It("passes its options to the ordmap fallback", func() {
		policy.Options = []ordmap.Option{ordmap.WithoutScalarIndex()}
		f, _ := policy.Select(nil)
		c := f()
		c.Store(math.Copysign(0, -1), "zero")
		Expect(c.Has(0.0)).To(BeTrue())
	})

	It("works with a zero Policy", func() {
		f, failed := shim.Policy{}.Select(shim.Native())
		Expect(failed).To(ConsistOf("nan-keys"))
		Expect(f).NotTo(BeNil())
	})
})

var _ = Describe("Install", func() {
	It("defaults to ordmap when nothing is installed", func() {
		Expect(shim.NewContainer().Implementation()).To(Equal(shim.ImplOrdered))
	})

	It("hands out containers from the installed factory", func() {
		shim.Install(shim.Policy{Probes: []shim.Probe{}}, shim.Native())
		Expect(shim.NewContainer().Implementation()).To(Equal(shim.ImplNative))

		shim.Reset()
		Expect(shim.NewContainer().Implementation()).To(Equal(shim.ImplOrdered))
	})

	It("installs the fallback when the candidate is rejected", func() {
		f := shim.Install(shim.Policy{}, shim.Native())
		Expect(f().Implementation()).To(Equal(shim.ImplOrdered))
		Expect(shim.NewContainer().Implementation()).To(Equal(shim.ImplOrdered))
	})
})

var _ = Describe("Containers", func() {
	for _, tc := range []struct {
		name    string
		factory shim.Factory
	}{
		{"ordmap", shim.Ordered()},
		{"native", shim.Native()},
	} {
		Context(tc.name, func() {
			var c shim.Container

			BeforeEach(func() {
				c = tc.factory()
			})

			It("stores, updates and deletes", func() {
				c.Store("a", 1)
				c.Store("b", 2)
				c.Store("a", 3)
				Expect(c.Len()).To(Equal(2))
				v, ok := c.Get("a")
				Expect(ok).To(BeTrue())
				Expect(v).To(Equal(3))
				Expect(c.Delete("a")).To(BeTrue())
				Expect(c.Delete("a")).To(BeFalse())
				Expect(rangeKeys(c)).To(Equal([]any{"b"}))
			})

			It("stops ranging when told to", func() {
				c.Store(1, 1)
				c.Store(2, 2)
				n := 0
				c.Range(func(any, any) bool {
					n++
					return false
				})
				Expect(n).To(Equal(1))
			})

			It("bulk-loads through ordmap's loader", func() {
				Expect(shim.Load(c, [][2]any{{"x", 1}, {"y", 2}})).To(Succeed())
				Expect(rangeKeys(c)).To(Equal([]any{"x", "y"}))

				err := shim.Load(c, []any{1, 2, 3})
				Expect(ordmap.IsCode(err, ordmap.ErrNotIterable)).To(BeTrue())
			})
		})
	}
})

var _ = Describe("Wrap", func() {
	It("adapts a constructed map", func() {
		m := ordmap.New().Set("k", "v")
		c, err := shim.Wrap(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Implementation()).To(Equal(shim.ImplOrdered))
		v, ok := c.Get("k")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("v"))

		c.Store("k2", 2)
		Expect(m.Len()).To(Equal(2))
	})

	It("rejects anything else", func() {
		for _, v := range []any{nil, new(ordmap.Map), map[string]int{}} {
			_, err := shim.Wrap(v)
			Expect(ordmap.CodeOf(err)).To(Equal(ordmap.ErrInvalidReceiver))
			Expect(err.Error()).To(ContainSubstring("Map.wrap"))
		}
	})
})

var _ = Describe("Load", func() {
	It("rejects a nil container", func() {
		err := shim.Load(nil, [][2]any{{"a", 1}})
		Expect(ordmap.CodeOf(err)).To(Equal(ordmap.ErrNotAFunction))
	})
})
