package statsd

import (
	"sync"
	"time"
)

// Recorded is one metric captured by a Recorder.
type Recorded struct {
	Kind  string // "count", "gauge" or "timing"
	Name  string
	Value float64
	Tags  map[string]string
}

// Recorder is an in-memory Sink for tests and local debugging.
type Recorder struct {
	mu      sync.Mutex
	metrics []Recorded
}

var _ Sink = (*Recorder)(nil)

func (r *Recorder) add(m Recorded) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = append(r.metrics, m)
}

func (r *Recorder) Count(name string, value int64, tags map[string]string) {
	r.add(Recorded{Kind: "count", Name: name, Value: float64(value), Tags: cloneTags(tags)})
}

func (r *Recorder) Gauge(name string, value float64, tags map[string]string) {
	r.add(Recorded{Kind: "gauge", Name: name, Value: value, Tags: cloneTags(tags)})
}

func (r *Recorder) Timing(name string, value time.Duration, tags map[string]string) {
	r.add(Recorded{Kind: "timing", Name: name, Value: float64(value) / float64(time.Millisecond), Tags: cloneTags(tags)})
}

// Named returns the recorded metrics with the given name, in emission order.
func (r *Recorder) Named(name string) []Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Recorded
	for _, m := range r.metrics {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}
