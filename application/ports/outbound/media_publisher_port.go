package outbound

import "context"

type PublishMediaRequest struct {
	MediaFileName string
	RunID         string
}

type PublishMediaResponse struct {
	MediaKey    string
	StoreRegion string
}

type MediaPublisherPort interface {
	Publish(ctx context.Context, req PublishMediaRequest) (*PublishMediaResponse, error)
}
