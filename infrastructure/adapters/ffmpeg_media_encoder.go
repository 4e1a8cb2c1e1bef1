package adapters

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"animate-frames-lambda/application/ports/outbound"
	"animate-frames-lambda/config"
)

type ffmpegMediaEncoder struct {
	logger        outbound.LoggerPort
	encoderConfig *config.EncoderConfig
}

func NewFFmpegMediaEncoder(encoderConfig *config.EncoderConfig, logger outbound.LoggerPort) outbound.MediaEncoderPort {
	return &ffmpegMediaEncoder{
		logger:        logger,
		encoderConfig: encoderConfig,
	}
}

// Encode removes any stale artifact at the output path, then runs the encoder
// synchronously over a glob of the frame files. Success is exit code zero plus
// an existing output file.
func (e *ffmpegMediaEncoder) Encode(params outbound.EncodeParams) (string, error) {
	if err := os.Remove(params.OutputPath); err != nil && !os.IsNotExist(err) {
		e.logger.Error(err, "error removing stale output file")
		return "", err
	}

	args := e.buildArgs(params)
	e.logger.Debug(e.encoderConfig.Binary + " " + strings.Join(args, " "))

	cmd := exec.Command(e.encoderConfig.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e.logger.ErrorWithFields(err, "error creating animated media", map[string]interface{}{
			"stderr": strings.TrimSpace(stderr.String()),
		})
		return "", fmt.Errorf("encoder exited abnormally: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	if _, err := os.Stat(params.OutputPath); err != nil {
		e.logger.Error(err, "encoder exited cleanly but produced no output")
		return "", fmt.Errorf("encoder produced no output at %s", params.OutputPath)
	}

	return params.OutputPath, nil
}

func (e *ffmpegMediaEncoder) buildArgs(params outbound.EncodeParams) []string {
	// The glob extension follows the first frame; frames are matched on disk
	// rather than taken from the in-memory result list.
	pattern := filepath.Join(params.FramesDir, "frame_*"+filepath.Ext(params.FirstFrame))

	args := []string{
		"-r", strconv.FormatFloat(params.FrameRate, 'f', -1, 64),
		"-pattern_type", "glob",
		"-i", pattern,
	}

	if params.VideoMode {
		args = append(args, "-pix_fmt", "yuv420p", "-c:v", "libx264", "-movflags", "faststart", "-qp", "17")
	} else {
		args = append(args, "-pix_fmt", "rgb8")
	}

	return append(args, params.OutputPath)
}
