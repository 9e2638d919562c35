package instrument

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/bfpath/bellmanford"
)

const (
	namespace = "bfpath"
	subsystem = "bellmanford"

	// OutcomeOK labels runs that returned a distance map.
	OutcomeOK = "ok"
	// OutcomeNegativeCycle labels runs that returned a NegativeCycleError.
	OutcomeNegativeCycle = "negative_cycle"
)

// Metrics holds the Prometheus collectors shared by all runs.
type Metrics struct {
	runs        *prometheus.CounterVec
	passes      prometheus.Counter
	relaxations prometheus.Counter
	duration    prometheus.Histogram
	lastNodes   prometheus.Gauge
	lastEdges   prometheus.Gauge

	now func() time.Time
}

// NewMetrics creates and registers the collectors with registry
// (prometheus.DefaultRegisterer when nil). Registering twice on the same
// registry panics, as promauto does.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Completed Bellman-Ford runs by outcome",
		}, []string{"outcome"}),
		passes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "passes_total",
			Help:      "Relaxation passes executed across all runs",
		}),
		relaxations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "relaxations_total",
			Help:      "Distance updates performed across all runs",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a Bellman-Ford run",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		}),
		lastNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "last_run_nodes",
			Help:      "Node count of the most recently started run",
		}),
		lastEdges: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "last_run_edges",
			Help:      "Edge count of the most recently started run",
		}),
		now: time.Now,
	}
}

// Observer returns a per-run observer feeding m.
func (m *Metrics) Observer() bellmanford.Observer {
	return &metricsRun{m: m}
}

type metricsRun struct {
	m     *Metrics
	start time.Time
}

func (r *metricsRun) Start(nodes, edges int) {
	r.start = r.m.now()
	r.m.lastNodes.Set(float64(nodes))
	r.m.lastEdges.Set(float64(edges))
}

func (r *metricsRun) Pass(_, relaxed int) {
	r.m.passes.Inc()
	r.m.relaxations.Add(float64(relaxed))
}

func (r *metricsRun) Finish(_ int, err error) {
	r.m.duration.Observe(r.m.now().Sub(r.start).Seconds())
	r.m.runs.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if errors.Is(err, bellmanford.ErrNegativeCycle) {
		return OutcomeNegativeCycle
	}

	return OutcomeOK
}
