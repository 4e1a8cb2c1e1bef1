package adapters

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"animate-frames-lambda/application/ports/outbound"
)

type prometheusMetrics struct {
	framesFetched prometheus.Counter
	framesFailed  prometheus.Counter
	pipelineRuns  *prometheus.CounterVec
	pipelineTime  *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the pipeline metrics on the default
// registry; call it once per process.
func NewPrometheusMetrics() outbound.PipelineMetricsPort {
	return &prometheusMetrics{
		framesFetched: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "animate",
			Name:      "frames_fetched_total",
			Help:      "Frames downloaded into the scratch directory.",
		}),
		framesFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "animate",
			Name:      "frames_failed_total",
			Help:      "Validated URLs whose download failed.",
		}),
		pipelineRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "animate",
			Name:      "pipeline_runs_total",
			Help:      "Pipeline invocations by output mode and outcome.",
		}, []string{"mode", "outcome"}),
		pipelineTime: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "animate",
			Name:      "pipeline_duration_seconds",
			Help:      "Wall time of a full pipeline run.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}, []string{"mode"}),
	}
}

func (m *prometheusMetrics) ObserveFetch(fetched int, failed int) {
	m.framesFetched.Add(float64(fetched))
	m.framesFailed.Add(float64(failed))
}

func (m *prometheusMetrics) ObservePipeline(mode string, seconds float64, failed bool) {
	outcome := "success"
	if failed {
		outcome = "failure"
	}
	m.pipelineRuns.WithLabelValues(mode, outcome).Inc()
	m.pipelineTime.WithLabelValues(mode).Observe(seconds)
}
