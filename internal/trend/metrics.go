package trend

// Metric is a tracked stat key and the label shown for it.
type Metric struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// MetricSet is an ordered list of metrics. Order breaks score ties.
type MetricSet []Metric

// Keys returns the metric keys in order.
func (ms MetricSet) Keys() []string {
	keys := make([]string, len(ms))
	for i, m := range ms {
		keys[i] = m.Key
	}
	return keys
}
