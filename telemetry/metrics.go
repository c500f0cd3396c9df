package telemetry

import "sync"

// MetricsMap is a Metrics implementation backed by a keyed value map.
// The zero value is ready to use and safe for concurrent use.
type MetricsMap struct {
	mu     sync.Mutex
	values map[string]uint64
}

// Add increments the value under key by delta.
func (m *MetricsMap) Add(key string, delta uint64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]uint64)
	}
	m.values[key] += delta
}

// Store replaces the value under key.
func (m *MetricsMap) Store(key string, value uint64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]uint64)
	}
	m.values[key] = value
}

// Snapshot returns a copy of every recorded value.
func (m *MetricsMap) Snapshot() map[string]uint64 {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]uint64, len(m.values))
	for key, value := range m.values {
		out[key] = value
	}
	return out
}
