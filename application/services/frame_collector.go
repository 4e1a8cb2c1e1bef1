package services

import (
	"context"
	"sync"

	"animate-frames-lambda/application/ports/inbound"
	"animate-frames-lambda/application/ports/outbound"
	"animate-frames-lambda/channel_utils"
	"animate-frames-lambda/domain"
)

type frameCollector struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	validator  outbound.UrlValidatorPort
	fetcher    outbound.FrameFetcherPort
	metrics    outbound.PipelineMetricsPort
}

func NewFrameCollector(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	validator outbound.UrlValidatorPort, fetcher outbound.FrameFetcherPort,
	metrics outbound.PipelineMetricsPort) inbound.FrameCollectorPort {
	return &frameCollector{
		logger:     logger,
		workerPool: workerPool,
		validator:  validator,
		fetcher:    fetcher,
		metrics:    metrics,
	}
}

// Collect probes every input URL concurrently, then downloads every URL that
// validated, again concurrently. Both phases join before the next one starts:
// frame numbers are positions within the validated subsequence, so they are
// only known once all probes are in. Per-URL failures are logged and excluded,
// never returned; the error path is reserved for dispatch failures.
func (c *frameCollector) Collect(ctx context.Context, params inbound.CollectFramesParams) ([]domain.FrameSlot, error) {
	validated, probeErrCh := c.probeURLs(ctx, params.URLs)
	slots, fetchErrCh := c.fetchFrames(ctx, validated, params.Dir)

	mergedErrCh, err := channel_utils.MergeChannels(c.workerPool, probeErrCh, fetchErrCh)
	if err != nil {
		return nil, err
	}
	var firstErr error
	for err := range mergedErrCh {
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	fetched := 0
	for _, s := range slots {
		if s.Fetched() {
			fetched++
		}
	}
	c.metrics.ObserveFetch(fetched, len(slots)-fetched)

	return slots, nil
}

func (c *frameCollector) probeURLs(ctx context.Context, urls []string) ([]domain.ValidatedURL, <-chan error) {
	errCh := make(chan error, len(urls)+1)
	verdicts := make([]bool, len(urls))

	var wg sync.WaitGroup
	for i, u := range urls {
		i, u := i, u
		wg.Add(1)
		err := c.workerPool.Submit(func() {
			defer wg.Done()
			verdicts[i] = c.validator.Validate(ctx, u)
		})
		if err != nil {
			wg.Done()
			errCh <- err
		}
	}
	wg.Wait()
	close(errCh)

	validated := make([]domain.ValidatedURL, 0, len(urls))
	for i, ok := range verdicts {
		if !ok {
			c.logger.WarnWithFields("url rejected by probe", map[string]interface{}{
				"url":      urls[i],
				"position": i,
			})
			continue
		}
		validated = append(validated, domain.ValidatedURL{
			URL:        urls[i],
			InputIndex: i,
			FrameIndex: len(validated),
		})
	}

	return validated, errCh
}

func (c *frameCollector) fetchFrames(ctx context.Context, validated []domain.ValidatedURL, dir string) ([]domain.FrameSlot, <-chan error) {
	errCh := make(chan error, len(validated)+1)
	slots := make([]domain.FrameSlot, len(validated))

	var wg sync.WaitGroup
	for _, v := range validated {
		v := v
		slots[v.FrameIndex] = domain.FrameSlot{
			FrameIndex: v.FrameIndex,
			InputIndex: v.InputIndex,
			URL:        v.URL,
		}
		wg.Add(1)
		err := c.workerPool.Submit(func() {
			defer wg.Done()
			fileName, err := c.fetcher.Fetch(ctx, outbound.FetchFrameParams{
				URL:        v.URL,
				Dir:        dir,
				FrameIndex: v.FrameIndex,
			})
			if err != nil {
				c.logger.ErrorWithFields(err, "frame download failed", map[string]interface{}{
					"url":   v.URL,
					"frame": v.FrameIndex,
				})
				return
			}
			slots[v.FrameIndex].FileName = fileName
		})
		if err != nil {
			wg.Done()
			errCh <- err
		}
	}
	wg.Wait()
	close(errCh)

	return slots, errCh
}
