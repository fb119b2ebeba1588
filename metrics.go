package brunetlezine

import "sync/atomic"

// MetricID defines a public type used by the console core APIs.
type MetricID uint16

const (
	// MetricLoginSuccess is an exported constant or variable used by the console core.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure is an exported constant or variable used by the console core.
	MetricLoginFailure
	// MetricLoginSuperseded is an exported constant or variable used by the console core.
	MetricLoginSuperseded
	// MetricLogout is an exported constant or variable used by the console core.
	MetricLogout
	// MetricDecodeFailure is an exported constant or variable used by the console core.
	MetricDecodeFailure

	metricCount
)

var metricNames = map[MetricID]string{
	MetricLoginSuccess:    "login_success",
	MetricLoginFailure:    "login_failure",
	MetricLoginSuperseded: "login_superseded",
	MetricLogout:          "logout",
	MetricDecodeFailure:   "decode_failure",
}

// Name returns the stable counter name for logging and export.
func (id MetricID) Name() string {
	if name, ok := metricNames[id]; ok {
		return name
	}
	return "unknown"
}

// Metrics defines a public type used by the console core APIs.
//
// Metrics instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Metrics struct {
	enabled  bool
	counters [metricCount]atomic.Uint64
}

// NewMetrics describes the newmetrics operation and its observable behavior.
//
// NewMetrics does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc increments one counter. Disabled metrics are a no-op on the hot path.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, metricCount)}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < metricCount; id++ {
		if v := m.counters[id].Load(); v > 0 {
			snap.Counters[id] = v
		}
	}
	return snap
}
