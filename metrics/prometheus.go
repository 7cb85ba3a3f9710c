package metrics

import "github.com/prometheus/client_golang/prometheus"

// PrometheusSink exports completed searches, labelled by engine.
type PrometheusSink struct {
	searches  *prometheus.CounterVec
	nodes     *prometheus.CounterVec
	terminals *prometheus.CounterVec
	maxDepth  *prometheus.GaugeVec
	duration  *prometheus.HistogramVec
}

func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	labels := []string{"engine"}
	s := &PrometheusSink{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minimax",
			Name:      "searches_total",
			Help:      "Completed searches.",
		}, labels),
		nodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minimax",
			Name:      "nodes_total",
			Help:      "Search nodes created.",
		}, labels),
		terminals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minimax",
			Name:      "terminal_nodes_total",
			Help:      "Terminal positions resolved.",
		}, labels),
		maxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "minimax",
			Name:      "last_search_max_depth",
			Help:      "Deepest node of the most recent search.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "minimax",
			Name:      "search_duration_seconds",
			Help:      "Wall time per search.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, labels),
	}
	reg.MustRegister(s.searches, s.nodes, s.terminals, s.maxDepth, s.duration)
	return s
}

func (s *PrometheusSink) Observe(metric SearchMetric) {
	s.searches.WithLabelValues(metric.Engine).Inc()
	s.nodes.WithLabelValues(metric.Engine).Add(float64(metric.Nodes))
	s.terminals.WithLabelValues(metric.Engine).Add(float64(metric.Terminals))
	s.maxDepth.WithLabelValues(metric.Engine).Set(float64(metric.MaxDepth))
	s.duration.WithLabelValues(metric.Engine).Observe(metric.Duration.Seconds())
}
