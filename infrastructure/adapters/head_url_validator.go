package adapters

import (
	"context"
	"io"
	"net/http"

	"animate-frames-lambda/application/ports/outbound"
	"animate-frames-lambda/config"
)

type headURLValidator struct {
	client *http.Client
	logger outbound.LoggerPort
}

// NewHeadURLValidator builds the reachability probe. It issues a single HEAD
// request per URL, no retries; anything short of a success status is a
// negative verdict, never an error.
func NewHeadURLValidator(fetcherConfig *config.FetcherConfig, logger outbound.LoggerPort) outbound.UrlValidatorPort {
	return &headURLValidator{
		client: &http.Client{Timeout: fetcherConfig.ProbeTimeout},
		logger: logger,
	}
}

func (v *headURLValidator) Validate(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		v.logger.WarnWithFields("not a usable url", map[string]interface{}{
			"url": rawURL,
		})
		return false
	}

	res, err := v.client.Do(req)
	if err != nil {
		v.logger.DebugWithFields("url probe failed", map[string]interface{}{
			"url": rawURL,
		})
		return false
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			v.logger.Error(err, "Failed to close the probe response body")
		}
	}(res.Body)

	if res.StatusCode >= http.StatusBadRequest {
		v.logger.DebugWithFields("url probe returned error status", map[string]interface{}{
			"url":    rawURL,
			"status": res.StatusCode,
		})
		return false
	}

	return true
}
