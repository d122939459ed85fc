// Package status is a lock-free metrics registry shared by the loop and the HUD
package status

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Producers cache pointers once; per-tick writes go straight to the atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Format renders every metric as "key=value", sorted by key across all types
func (r *Registry) Format() []string {
	type kv struct{ k, v string }
	all := make([]kv, 0, r.TotalCount())

	r.Bools.Range(func(k string, p *atomic.Bool) {
		all = append(all, kv{k, strconv.FormatBool(p.Load())})
	})
	r.Ints.Range(func(k string, p *atomic.Int64) {
		all = append(all, kv{k, strconv.FormatInt(p.Load(), 10)})
	})
	r.Floats.Range(func(k string, p *AtomicFloat) {
		all = append(all, kv{k, strconv.FormatFloat(p.Get(), 'f', 2, 64)})
	})

	sort.Slice(all, func(i, j int) bool { return all[i].k < all[j].k })

	out := make([]string, len(all))
	for i, m := range all {
		out[i] = m.k + "=" + m.v
	}
	return out
}

// AtomicFloat is a float64 stored as bits; zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta via CAS loop and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
