package outbound

type PipelineMetricsPort interface {
	ObserveFetch(fetched int, failed int)
	ObservePipeline(mode string, seconds float64, failed bool)
}
