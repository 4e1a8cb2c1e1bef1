package adapters

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"animate-frames-lambda/application/ports/outbound"
)

type zipArchiveBuilder struct {
	logger outbound.LoggerPort
}

func NewZipArchiveBuilder(logger outbound.LoggerPort) outbound.ArchiveBuilderPort {
	return &zipArchiveBuilder{
		logger: logger,
	}
}

// Build walks srcDir recursively and writes every regular file into a zip at
// outPath, truncating whatever was there before. Entry names are the paths
// relative to srcDir.
func (b *zipArchiveBuilder) Build(srcDir string, outPath string) (string, error) {
	out, err := os.Create(outPath)
	if err != nil {
		b.logger.Error(err, "Failed to create archive file")
		return "", err
	}
	defer func(out *os.File) {
		if err := out.Close(); err != nil {
			b.logger.Error(err, "Failed to close archive file")
		}
	}(out)

	w := zip.NewWriter(out)

	err = filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}

		entry, err := w.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		src, err := os.Open(p)
		if err != nil {
			return err
		}
		_, err = io.Copy(entry, src)
		if closeErr := src.Close(); err == nil {
			err = closeErr
		}
		return err
	})
	if err != nil {
		b.logger.Error(err, "Failed to write archive entries")
		return "", err
	}

	if err := w.Close(); err != nil {
		b.logger.Error(err, "Failed to finalize archive")
		return "", err
	}

	return outPath, nil
}
