package plans

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts computed plans and their outcomes.
type Metrics struct {
	created     prometheus.Counter
	packed      prometheus.Counter
	unplaced    prometheus.Counter
	utilization prometheus.Histogram
}

// NewMetrics registers plan collectors with the given registerer.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "plans",
			Name:      "created_total",
			Help:      "Total number of load plans computed",
		}),
		packed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "plans",
			Name:      "items_packed_total",
			Help:      "Total number of products placed across all plans",
		}),
		unplaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "plans",
			Name:      "items_unplaced_total",
			Help:      "Total number of products that fit in no free space",
		}),
		utilization: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "plans",
			Name:      "utilization_ratio",
			Help:      "Fraction of vehicle volume occupied by padded products",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.created, m.packed, m.unplaced, m.utilization} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// observe records a computed plan. A nil receiver records nothing.
func (m *Metrics) observe(p *Plan) {
	if m == nil {
		return
	}
	m.created.Inc()
	m.packed.Add(float64(p.Summary.PackedCount))
	m.unplaced.Add(float64(p.Summary.UnplacedCount))
	m.utilization.Observe(p.Summary.Utilization)
}
