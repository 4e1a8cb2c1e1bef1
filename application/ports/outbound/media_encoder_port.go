package outbound

type EncodeParams struct {
	FramesDir  string
	FirstFrame string
	OutputPath string
	FrameRate  float64
	VideoMode  bool
}

// MediaEncoderPort runs the external encoder over the frame files in
// FramesDir and blocks until it exits. Frames are discovered by glob, not
// passed individually, so frame file names must sort in frame order.
type MediaEncoderPort interface {
	Encode(params EncodeParams) (string, error)
}
