package dispatch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/document-export-service/pkg/export"
)

// FallbackDelay is how long the mobile deep link is given before the
// WhatsApp Web fallback opens.
const FallbackDelay = time.Second

// Platform describes the sharing capabilities of the host environment.
type Platform struct {
	Mobile      bool
	NativeShare bool // can share text plus a file URL
	FileShare   bool // can share the file payload itself
}

// Opener launches URLs on the host. Open targets a new window or tab;
// Navigate replaces the current one, which is how app deep links fire.
type Opener interface {
	Open(url string) error
	Navigate(url string) error
}

// FileSharer shares a staged file with an accompanying message.
type FileSharer interface {
	ShareFile(ctx context.Context, path, message string) error
}

// TextSharer shares a message with a URL pointing at the staged file.
type TextSharer interface {
	ShareText(ctx context.Context, message, fileURL string) error
}

// SharerConfig wires a Sharer's environment.
type SharerConfig struct {
	Platform Platform
	Opener   Opener
	Files    FileSharer
	Texts    TextSharer

	// Sleep is swapped out in tests. Defaults to time.Sleep.
	Sleep func(time.Duration)

	// StageDir holds files written for sharing. Defaults to the system
	// temp directory.
	StageDir string
}

// Sharer walks the share ladder for one artifact: native file share, then
// mobile text share, then the WhatsApp deep link with a timed web fallback,
// and on desktop the web URL alone.
type Sharer struct {
	log *zap.Logger
	cfg SharerConfig
}

// NewSharer returns a sharer for the given environment.
func NewSharer(log *zap.Logger, cfg SharerConfig) *Sharer {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if cfg.StageDir == "" {
		cfg.StageDir = os.TempDir()
	}
	return &Sharer{log: log, cfg: cfg}
}

// Share delivers the artifact. Every rung of the ladder except the last
// swallows its failure and falls through; only the final attempt's error
// reaches the caller.
func (s *Sharer) Share(ctx context.Context, art *export.Artifact, message string) error {
	if s.cfg.Platform.FileShare && s.cfg.Files != nil {
		path, err := s.stage(art)
		if err == nil {
			if err = s.cfg.Files.ShareFile(ctx, path, message); err == nil {
				return nil
			}
		}
		s.log.Info("file share failed, falling through", zap.Error(err))
	}

	if s.cfg.Platform.Mobile {
		if s.cfg.Platform.NativeShare && s.cfg.Texts != nil {
			path, err := s.stage(art)
			if err == nil {
				if err = s.cfg.Texts.ShareText(ctx, message, "file://"+path); err == nil {
					return nil
				}
			}
			s.log.Info("mobile share failed, falling through", zap.Error(err))
		}

		if err := s.cfg.Opener.Navigate(DeepLinkURL(message)); err != nil {
			s.log.Info("whatsapp deep link failed", zap.Error(err))
		}
		s.cfg.Sleep(FallbackDelay)
		return s.cfg.Opener.Open(WebURL(message))
	}

	// Desktop never fires the app deep link.
	return s.cfg.Opener.Open(WebURL(message))
}

// stage writes the artifact where the host share mechanism can reach it.
func (s *Sharer) stage(art *export.Artifact) (string, error) {
	if err := os.MkdirAll(s.cfg.StageDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.cfg.StageDir, art.Filename)
	if err := os.WriteFile(path, art.Bytes, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
