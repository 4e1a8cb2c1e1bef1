package domain

import "errors"

var (
	// ErrMalformedInput means the request could not be turned into a URL list
	// with a positive frame rate. Surfaced before any concurrent work starts.
	ErrMalformedInput = errors.New("malformed input: url list and positive frame rate required")

	// ErrNoFrames means no URL both validated and downloaded, so there is
	// nothing to encode.
	ErrNoFrames = errors.New("no frames could be fetched")

	// ErrEncoderFailed means frames existed but the external encoder did not
	// produce the output artifact.
	ErrEncoderFailed = errors.New("encoder failed")
)
