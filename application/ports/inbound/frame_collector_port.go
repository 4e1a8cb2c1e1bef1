package inbound

import (
	"context"

	"animate-frames-lambda/domain"
)

type CollectFramesParams struct {
	URLs []string
	Dir  string
}

// FrameCollectorPort fans out validation and download across the input URL
// list and joins before returning. Slots come back ordered by frame index;
// a slot whose download failed is present with an empty file name so the
// caller can observe partial failure.
type FrameCollectorPort interface {
	Collect(ctx context.Context, params CollectFramesParams) ([]domain.FrameSlot, error)
}
