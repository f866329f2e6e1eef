package dispatch

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/document-export-service/pkg/export"
)

// Downloader saves artifacts into a local directory under their fixed
// filenames, overwriting any previous export of the same document type.
type Downloader struct {
	log *zap.Logger
	dir string
}

// NewDownloader returns a downloader writing into dir.
func NewDownloader(log *zap.Logger, dir string) *Downloader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Downloader{log: log, dir: dir}
}

// Save writes the artifact and returns its path.
func (d *Downloader) Save(art *export.Artifact) (string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	path := filepath.Join(d.dir, art.Filename)
	if err := os.WriteFile(path, art.Bytes, 0o644); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	d.log.Info("artifact saved",
		zap.String("path", path),
		zap.Int("bytes", len(art.Bytes)))
	return path, nil
}
