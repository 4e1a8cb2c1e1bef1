package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animate-frames-lambda/application/ports/outbound"
	"animate-frames-lambda/config"
)

func newEncoderForTest(binary string) *ffmpegMediaEncoder {
	return NewFFmpegMediaEncoder(&config.EncoderConfig{Binary: binary}, NewZerologWrapper()).(*ffmpegMediaEncoder)
}

func writeFakeEncoder(t *testing.T, script string) string {
	t.Helper()
	binary := filepath.Join(t.TempDir(), "fake-ffmpeg")
	require.NoError(t, os.WriteFile(binary, []byte(script), 0o755))
	return binary
}

func TestFFmpegMediaEncoder_GifArgs(t *testing.T) {
	encoder := newEncoderForTest("ffmpeg")

	args := encoder.buildArgs(outbound.EncodeParams{
		FramesDir:  "/scratch",
		FirstFrame: "/scratch/frame_0000.png",
		OutputPath: "/out/animated.gif",
		FrameRate:  4,
	})

	assert.Equal(t, []string{
		"-r", "4",
		"-pattern_type", "glob",
		"-i", "/scratch/frame_*.png",
		"-pix_fmt", "rgb8",
		"/out/animated.gif",
	}, args)
}

func TestFFmpegMediaEncoder_VideoArgs(t *testing.T) {
	encoder := newEncoderForTest("ffmpeg")

	args := encoder.buildArgs(outbound.EncodeParams{
		FramesDir:  "/scratch",
		FirstFrame: "/scratch/frame_0000.jpg",
		OutputPath: "/out/animated.mp4",
		FrameRate:  12.5,
		VideoMode:  true,
	})

	assert.Equal(t, []string{
		"-r", "12.5",
		"-pattern_type", "glob",
		"-i", "/scratch/frame_*.jpg",
		"-pix_fmt", "yuv420p",
		"-c:v", "libx264",
		"-movflags", "faststart",
		"-qp", "17",
		"/out/animated.mp4",
	}, args)
}

func TestFFmpegMediaEncoder_OverwritesStaleOutput(t *testing.T) {
	// The fake encoder creates an empty file at its last argument.
	binary := writeFakeEncoder(t, "#!/bin/sh\nfor last; do :; done\n: > \"$last\"\n")
	encoder := newEncoderForTest(binary)

	outputPath := filepath.Join(t.TempDir(), "animated.gif")
	require.NoError(t, os.WriteFile(outputPath, []byte("stale artifact"), 0o644))

	got, err := encoder.Encode(outbound.EncodeParams{
		FramesDir:  t.TempDir(),
		FirstFrame: "frame_0000.png",
		OutputPath: outputPath,
		FrameRate:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, outputPath, got)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestFFmpegMediaEncoder_NonZeroExit(t *testing.T) {
	binary := writeFakeEncoder(t, "#!/bin/sh\necho 'broken frame set' >&2\nexit 1\n")
	encoder := newEncoderForTest(binary)

	_, err := encoder.Encode(outbound.EncodeParams{
		FramesDir:  t.TempDir(),
		FirstFrame: "frame_0000.png",
		OutputPath: filepath.Join(t.TempDir(), "animated.gif"),
		FrameRate:  4,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken frame set")
}

func TestFFmpegMediaEncoder_CleanExitWithoutOutput(t *testing.T) {
	binary := writeFakeEncoder(t, "#!/bin/sh\nexit 0\n")
	encoder := newEncoderForTest(binary)

	_, err := encoder.Encode(outbound.EncodeParams{
		FramesDir:  t.TempDir(),
		FirstFrame: "frame_0000.png",
		OutputPath: filepath.Join(t.TempDir(), "animated.gif"),
		FrameRate:  4,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no output")
}

func TestFFmpegMediaEncoder_MissingBinary(t *testing.T) {
	encoder := newEncoderForTest(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := encoder.Encode(outbound.EncodeParams{
		FramesDir:  t.TempDir(),
		FirstFrame: "frame_0000.png",
		OutputPath: filepath.Join(t.TempDir(), "animated.gif"),
		FrameRate:  4,
	})
	assert.Error(t, err)
}
