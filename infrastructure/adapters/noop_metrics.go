package adapters

import "animate-frames-lambda/application/ports/outbound"

type noopMetrics struct{}

// NewNoopMetrics is for the CLI and tests, where no registry is scraped.
func NewNoopMetrics() outbound.PipelineMetricsPort {
	return noopMetrics{}
}

func (noopMetrics) ObserveFetch(fetched int, failed int) {}

func (noopMetrics) ObservePipeline(mode string, seconds float64, failed bool) {}
