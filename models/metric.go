package models

// MetricEntry represents a single headline indicator with its current value
// and signed percent change against a comparison period.
type MetricEntry struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
	Period string  `json:"period"`
}

// MetricCollection holds metric entries keyed by name while preserving
// insertion order. Display order on the dashboard is insertion order.
type MetricCollection struct {
	names   []string
	entries map[string]MetricEntry
}

func NewMetricCollection() *MetricCollection {
	return &MetricCollection{
		entries: make(map[string]MetricEntry),
	}
}

// Add inserts or replaces an entry. First insertion fixes the display position.
func (mc *MetricCollection) Add(entry MetricEntry) {
	if _, exists := mc.entries[entry.Name]; !exists {
		mc.names = append(mc.names, entry.Name)
	}
	mc.entries[entry.Name] = entry
}

func (mc *MetricCollection) Get(name string) (MetricEntry, bool) {
	entry, ok := mc.entries[name]
	return entry, ok
}

func (mc *MetricCollection) Len() int {
	return len(mc.names)
}

// Entries returns all entries in insertion order.
func (mc *MetricCollection) Entries() []MetricEntry {
	out := make([]MetricEntry, 0, len(mc.names))
	for _, name := range mc.names {
		out = append(out, mc.entries[name])
	}
	return out
}
