package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/limaJavier/genetic-timetabling/pkg/genetic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the optimizer and its HTTP surface.
// It satisfies genetic.Observer.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	runs             *prometheus.CounterVec
	runGenerations   prometheus.Histogram
	bestScore        prometheus.Gauge
	generationScores *prometheus.HistogramVec
	droppedTotal     prometheus.Counter

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetabling_runs_total",
		Help: "Total number of optimizer runs",
	}, []string{"perfect"})

	runGenerations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetabling_run_generations",
		Help:    "Generations evaluated per optimizer run",
		Buckets: prometheus.ExponentialBuckets(1, 2, 11),
	})

	bestScore := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetabling_best_score",
		Help: "Score of the schedule returned by the latest run",
	})

	generationScores := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timetabling_generation_score",
		Help:    "Best and mean score per evaluated generation",
		Buckets: prometheus.LinearBuckets(0, 8, 16),
	}, []string{"kind"})

	droppedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetabling_dropped_placements_total",
		Help: "Course placements dropped due to assignment conflicts",
	})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	registry.MustRegister(
		runs,
		runGenerations,
		bestScore,
		generationScores,
		droppedTotal,
		requestDuration,
		requestTotal,
		collectors.NewGoCollector(),
	)

	return &Metrics{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		runs:             runs,
		runGenerations:   runGenerations,
		bestScore:        bestScore,
		generationScores: generationScores,
		droppedTotal:     droppedTotal,
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
	}
}

func (m *Metrics) Handler() http.Handler {
	return m.handler
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveGeneration(stats genetic.GenerationStats) {
	m.generationScores.WithLabelValues("best").Observe(float64(stats.Best))
	m.generationScores.WithLabelValues("mean").Observe(stats.Mean)
}

func (m *Metrics) ObserveRun(result genetic.Result) {
	m.runs.WithLabelValues(strconv.FormatBool(result.Perfect)).Inc()
	m.runGenerations.Observe(float64(result.Generations))
	m.droppedTotal.Add(float64(result.Tally.Dropped))
	if result.Best != nil {
		m.bestScore.Set(float64(result.Best.Score()))
	}
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	statusLabel := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, statusLabel).Inc()
}
