package status

import "sync/atomic"

// Registry holds the parade counters
// The stage caches pointers at construction and writes atomics directly
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Fields flattens every metric into alternating key, value pairs for structured logging
// Ints come first, each group in key order
func (r *Registry) Fields() []any {
	fields := make([]any, 0, 2*r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fields = append(fields, key, v.Load())
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		fields = append(fields, key, v.Load())
	})
	return fields
}
