package solver

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records finished runs in a Prometheus registry. It is safe for
// concurrent use.
type Metrics struct {
	registry *prometheus.Registry

	runs        *prometheus.CounterVec
	bestScore   *prometheus.GaugeVec
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec

	mu   sync.Mutex
	best map[Algo]int64
}

// NewMetrics registers the bookscan collectors in reg, or in a fresh registry
// when reg is nil. Registering twice in the same registry panics.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bookscan_runs_total",
			Help: "Finished optimisation runs by algorithm",
		}, []string{"algo"}),
		bestScore: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bookscan_best_score",
			Help: "Best score reached so far by algorithm",
		}, []string{"algo"}),
		evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bookscan_evaluations_total",
			Help: "Full score evaluations performed by algorithm",
		}, []string{"algo"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bookscan_run_duration_seconds",
			Help:    "Run wall time in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4.4min
		}, []string{"algo"}),
		best: make(map[Algo]int64),
	}
}

// Registry exposes the underlying registry for gathering or serving.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Observe records one finished run.
func (m *Metrics) Observe(rep Report) {
	algo := rep.Algo.String()
	m.runs.WithLabelValues(algo).Inc()
	m.evaluations.WithLabelValues(algo).Add(float64(rep.Result.Evaluations))
	m.duration.WithLabelValues(algo).Observe(rep.Elapsed.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.best[rep.Algo]; !ok || rep.Result.Score > prev {
		m.best[rep.Algo] = rep.Result.Score
		m.bestScore.WithLabelValues(algo).Set(float64(rep.Result.Score))
	}
}

// WriteTextfile writes the registry in the text exposition format, for the
// node-exporter textfile collector. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
