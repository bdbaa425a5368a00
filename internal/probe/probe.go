// Package probe provides lightweight measurement primitives for the test
// suites: named counters, gauges, and duration series grouped under a
// Probe. The catalogue itself never measures anything - probes exist so
// specs can assert traversal and predicate-invocation counts.
package probe

type Probe interface {
	Sub(string) Probe
	AddMetric(metric)
	Metrics() map[string]metric
}

type probe struct {
	key      string
	children map[string]Probe
	metrics  map[string]metric
}

func New(key string) Probe {
	return &probe{
		key:      key,
		children: make(map[string]Probe),
		metrics:  make(map[string]metric),
	}
}

func (p *probe) Sub(key string) Probe {
	sub := New(key)
	p.children[key] = sub
	return sub
}

func (p *probe) AddMetric(m metric) {
	p.metrics[m.Key()] = m
}

func (p *probe) Metrics() map[string]metric {
	return p.metrics
}

type metric interface {
	Key() string
}

type entry struct {
	key string
}

func newEntry(key string) entry { return entry{key: key} }

func (e entry) Key() string { return e.key }
