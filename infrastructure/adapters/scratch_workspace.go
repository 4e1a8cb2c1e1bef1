package adapters

import (
	"os"

	"animate-frames-lambda/application/ports/outbound"
)

type scratchWorkspace struct {
	logger outbound.LoggerPort
}

func NewScratchWorkspace(logger outbound.LoggerPort) outbound.WorkspacePort {
	return &scratchWorkspace{
		logger: logger,
	}
}

func (w *scratchWorkspace) Create() (string, error) {
	dir, err := os.MkdirTemp("", "frames-")
	if err != nil {
		w.logger.Error(err, "Failed to create scratch directory")
		return "", err
	}
	return dir, nil
}

func (w *scratchWorkspace) Remove(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		w.logger.Error(err, "Failed to remove scratch directory")
	}
}
