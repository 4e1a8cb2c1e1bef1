package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"animate-frames-lambda/application/ports/outbound"
)

type httpFrameFetcher struct {
	fetcher ContentFetcher
	logger  outbound.LoggerPort
}

func NewHTTPFrameFetcher(fetcher ContentFetcher, logger outbound.LoggerPort) outbound.FrameFetcherPort {
	return &httpFrameFetcher{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Fetch downloads the URL body and writes it into the scratch directory as
// frame_<index><ext>. The payload is written as-is: a corrupt or non-image
// body only surfaces later, when the encoder chokes on it.
func (f *httpFrameFetcher) Fetch(ctx context.Context, params outbound.FetchFrameParams) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, params.URL, nil)
	if err != nil {
		f.logger.Error(err, "Failed to create the HTTP request")
		return "", err
	}

	payload, err := f.fetcher.FetchContent(req)
	if err != nil {
		return "", err
	}

	fileName := filepath.Join(params.Dir, FrameFileName(params.FrameIndex, params.URL))
	if err := os.WriteFile(fileName, payload, 0o644); err != nil {
		f.logger.ErrorWithFields(err, "Failed to write frame file", map[string]interface{}{
			"file": fileName,
		})
		return "", err
	}

	return fileName, nil
}

// FrameFileName builds the frame file name for an index and source URL. The
// index is zero-padded so that lexicographic glob order equals frame order.
// The extension comes from the URL path, query string excluded, and may be
// empty.
func FrameFileName(frameIndex int, rawURL string) string {
	ext := ""
	if u, err := url.Parse(rawURL); err == nil {
		ext = path.Ext(u.Path)
	}
	return fmt.Sprintf("frame_%04d%s", frameIndex, ext)
}
