package inbound

import (
	"context"

	"animate-frames-lambda/domain"
)

type StartPipelineParams struct {
	URLs          []string
	VideoMode     bool
	FrameRate     float64
	ArchiveInputs bool
	OutputDir     string
	RunID         string
}

type AnimationPipelinePort interface {
	StartPipeline(ctx context.Context, params StartPipelineParams) (*domain.PipelineResult, error)
}
