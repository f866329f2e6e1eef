// Package export turns a layout.Document into a finished PDF artifact.
// Generation is a two-pass process: the body is rasterized first with the
// header band left blank, then every page is revisited and stamped with the
// letterhead, title, reference line and page footer.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/document-export-service/pkg/assets"
	"github.com/document-export-service/pkg/layout"
)

// State tracks where a generation run is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateAwaitingImages
	StateRasterizing
	StateAnnotating
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingImages:
		return "awaiting-images"
	case StateRasterizing:
		return "rasterizing"
	case StateAnnotating:
		return "annotating"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrAssetsNotReady is returned when a document needs an image that never
// resolved. Generation is skipped rather than producing a broken artifact.
var ErrAssetsNotReady = errors.New("export: document assets not resolved")

// Page geometry, in millimeters on A4 portrait.
const (
	MarginTop    = 55.0
	MarginLeft   = 0.0
	MarginBottom = 15.0
	MarginRight  = 0.0

	// Raster settings carried by the artifact metadata.
	JPEGQuality = 0.98
	RasterScale = 2
)

// Artifact is one generated PDF.
type Artifact struct {
	ID         string
	Filename   string
	Bytes      []byte
	PageCount  int
	PageWidth  float64
	PageHeight float64
}

// Options tune a Pipeline.
type Options struct {
	// Compress toggles PDF stream compression. On by default; tests turn
	// it off to inspect raw content streams.
	Compress bool
}

// DefaultOptions returns the production settings.
func DefaultOptions() Options {
	return Options{Compress: true}
}

// Pipeline generates PDF artifacts from rendered documents.
type Pipeline struct {
	log  *zap.Logger
	opts Options
}

// NewPipeline returns a pipeline with the given options.
func NewPipeline(log *zap.Logger, opts Options) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{log: log, opts: opts}
}

// Generate runs the full export for one document: wait for its images,
// rasterize the body, then annotate every page.
func (p *Pipeline) Generate(ctx context.Context, doc *layout.Document) (*Artifact, error) {
	state := StateIdle
	log := p.log.With(zap.String("kind", string(doc.Kind)), zap.String("ref", doc.Ref))
	log.Debug("export state", zap.Stringer("state", state))

	state = StateAwaitingImages
	log.Debug("export state", zap.Stringer("state", state))
	gate := assets.NewGate(doc.Images())
	if err := gate.Wait(ctx); err != nil {
		return nil, fmt.Errorf("export %s: %w", doc.Ref, err)
	}
	if doc.Variant.Letterhead && (doc.Letterhead == nil || len(doc.Letterhead.Bytes()) == 0) {
		log.Warn("letterhead not resolved, export skipped")
		return nil, ErrAssetsNotReady
	}

	state = StateRasterizing
	log.Debug("export state", zap.Stringer("state", state))
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(p.opts.Compress)
	pdf.SetMargins(MarginLeft, MarginTop, MarginRight)
	pdf.SetAutoPageBreak(true, MarginBottom)
	renderBody(pdf, doc)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("export %s: rasterize: %w", doc.Ref, err)
	}

	state = StateAnnotating
	log.Debug("export state", zap.Stringer("state", state))
	annotate(pdf, doc)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("export %s: annotate: %w", doc.Ref, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export %s: output: %w", doc.Ref, err)
	}

	state = StateComplete
	pageW, pageH := pdf.GetPageSize()
	art := &Artifact{
		ID:         uuid.New().String(),
		Filename:   doc.Filename,
		Bytes:      buf.Bytes(),
		PageCount:  pdf.PageCount(),
		PageWidth:  pageW,
		PageHeight: pageH,
	}
	log.Info("export complete",
		zap.Stringer("state", state),
		zap.String("artifact_id", art.ID),
		zap.String("filename", art.Filename),
		zap.Int("pages", art.PageCount),
		zap.Int("bytes", len(art.Bytes)))
	return art, nil
}
