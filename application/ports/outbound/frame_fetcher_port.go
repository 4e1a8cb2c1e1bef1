package outbound

import "context"

type FetchFrameParams struct {
	URL        string
	Dir        string
	FrameIndex int
}

// FrameFetcherPort downloads one validated URL into the scratch directory
// under a name derived from the frame index. Returns the written file path.
type FrameFetcherPort interface {
	Fetch(ctx context.Context, params FetchFrameParams) (string, error)
}
