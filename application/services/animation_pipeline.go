package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"animate-frames-lambda/application/ports/inbound"
	"animate-frames-lambda/application/ports/outbound"
	"animate-frames-lambda/domain"
)

type animationPipeline struct {
	logger    outbound.LoggerPort
	collector inbound.FrameCollectorPort
	encoder   outbound.MediaEncoderPort
	archiver  outbound.ArchiveBuilderPort
	workspace outbound.WorkspacePort
	publisher outbound.MediaPublisherPort
	metrics   outbound.PipelineMetricsPort
}

// NewAnimationPipeline wires the facade. publisher may be nil, in which case
// the produced media stays local.
func NewAnimationPipeline(logger outbound.LoggerPort, collector inbound.FrameCollectorPort,
	encoder outbound.MediaEncoderPort, archiver outbound.ArchiveBuilderPort,
	workspace outbound.WorkspacePort, publisher outbound.MediaPublisherPort,
	metrics outbound.PipelineMetricsPort) inbound.AnimationPipelinePort {
	return &animationPipeline{
		logger:    logger,
		collector: collector,
		encoder:   encoder,
		archiver:  archiver,
		workspace: workspace,
		publisher: publisher,
		metrics:   metrics,
	}
}

func (p *animationPipeline) StartPipeline(ctx context.Context, params inbound.StartPipelineParams) (*domain.PipelineResult, error) {
	mode := domain.GifMode
	if params.VideoMode {
		mode = domain.Mp4Mode
	}

	started := time.Now()
	result, err := p.run(ctx, params, mode)
	p.metrics.ObservePipeline(string(mode), time.Since(started).Seconds(), err != nil)

	return result, err
}

func (p *animationPipeline) run(ctx context.Context, params inbound.StartPipelineParams, mode domain.OutputMode) (*domain.PipelineResult, error) {
	if params.FrameRate <= 0 {
		return nil, domain.ErrMalformedInput
	}
	if params.OutputDir == "" {
		params.OutputDir = "."
	}

	scratchDir, err := p.workspace.Create()
	if err != nil {
		p.logger.Error(err, "failed to create scratch directory")
		return nil, err
	}
	defer p.workspace.Remove(scratchDir)

	slots, err := p.collector.Collect(ctx, inbound.CollectFramesParams{
		URLs: params.URLs,
		Dir:  scratchDir,
	})
	if err != nil {
		p.logger.Error(err, "failed to collect frames")
		return nil, err
	}

	frames := make([]domain.FrameSlot, 0, len(slots))
	for _, s := range slots {
		if s.Fetched() {
			frames = append(frames, s)
		}
	}
	if len(frames) == 0 {
		return nil, domain.ErrNoFrames
	}

	p.logger.InfoWithFields("encoding frames", map[string]interface{}{
		"frames": len(frames),
		"inputs": len(params.URLs),
		"mode":   string(mode),
	})

	mediaFileName, err := p.encoder.Encode(outbound.EncodeParams{
		FramesDir:  scratchDir,
		FirstFrame: frames[0].FileName,
		OutputPath: filepath.Join(params.OutputDir, mode.MediaFileName()),
		FrameRate:  params.FrameRate,
		VideoMode:  params.VideoMode,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoderFailed, err)
	}

	result := &domain.PipelineResult{
		MediaFileName: mediaFileName,
		FrameCount:    len(frames),
	}

	if params.ArchiveInputs {
		archiveFileName, err := p.archiver.Build(scratchDir, filepath.Join(params.OutputDir, domain.ArchiveFileName))
		if err != nil {
			// The media artifact is already produced; losing the archive does
			// not invalidate it.
			p.logger.Error(err, "failed to build input archive")
		} else {
			result.ArchiveFileName = archiveFileName
		}
	}

	if p.publisher != nil {
		published, err := p.publisher.Publish(ctx, outbound.PublishMediaRequest{
			MediaFileName: mediaFileName,
			RunID:         params.RunID,
		})
		if err != nil {
			p.logger.Error(err, "failed to publish media")
		} else {
			result.PublishedKey = published.MediaKey
			result.PublishedRegion = published.StoreRegion
		}
	}

	return result, nil
}
