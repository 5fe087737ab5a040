// Package status collects runtime counters for props and the simulation loop
// Producers cache metric pointers at construction; the terminal UI reads them each frame
package status

import (
	"fmt"
	"sync/atomic"
)

// Registry groups metric maps by value type
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot renders every metric as "key=value" in sorted order, ints first
func (r *Registry) Snapshot() []string {
	var out []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%.2f", key, v.Get()))
	})
	return out
}
