package probe

import "time"

type Metric[T any] interface {
	Record(T)
	Values() []T
	Count() int
}

// |||||| COUNTER ||||||

// Counter counts occurrences. Record adds to the running total; Count
// reports how many times Record was called.
type Counter interface {
	Metric[int]
	Inc()
}

type counter struct {
	entry
	calls int
	total int
}

func NewCounter(p Probe, key string) Counter {
	m := &counter{entry: newEntry(key)}
	p.AddMetric(m)
	return m
}

func (c *counter) Inc() { c.Record(1) }

func (c *counter) Record(v int) {
	c.calls++
	c.total += v
}

func (c *counter) Values() []int { return []int{c.total} }

func (c *counter) Count() int { return c.calls }

// |||||| SERIES ||||||

type series[T any] struct {
	entry
	values []T
}

func NewSeries[T any](p Probe, key string) Metric[T] {
	m := &series[T]{entry: newEntry(key)}
	p.AddMetric(m)
	return m
}

func (s *series[T]) Record(v T) { s.values = append(s.values, v) }

func (s *series[T]) Values() []T { return s.values }

func (s *series[T]) Count() int { return len(s.values) }

// |||||| DURATION ||||||

type Duration interface {
	Metric[time.Duration]
	Start()
	Stop() time.Duration
}

type duration struct {
	start time.Time
	Metric[time.Duration]
}

func NewDuration(p Probe, key string) Duration {
	return &duration{Metric: NewSeries[time.Duration](p, key)}
}

func (d *duration) Start() {
	if !d.start.IsZero() {
		panic("duration metric already started. please call Stop() first")
	}
	d.start = time.Now()
}

func (d *duration) Stop() time.Duration {
	if d.start.IsZero() {
		panic("duration metric not started. please call Start() first")
	}
	t := time.Since(d.start)
	d.start = time.Time{}
	d.Record(t)
	return t
}
