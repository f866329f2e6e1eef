package assets

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Asset path prefixes on the public host.
const (
	letterHeadPath = "/api/public/assets/images/letterHead/"
	signPath       = "/api/public/assets/images/sign/"
)

// Resolver resolves letterhead and signature references. URLs are derived
// immediately; byte loads run in the background and successful loads are
// cached for the resolver's lifetime. Failed loads are evicted, so the next
// view retries instead of inheriting the error.
type Resolver struct {
	source     Source
	publicBase string
	log        *zap.Logger

	mu    sync.Mutex
	cache map[string]*Image
}

// NewResolver builds a resolver over the given byte source. publicBase is
// the host prefix used for direct image URLs in the print view.
func NewResolver(source Source, publicBase string, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		source:     source,
		publicBase: publicBase,
		log:        log,
		cache:      make(map[string]*Image),
	}
}

// LetterheadURL returns the directly embeddable URL for a letterhead file.
func (r *Resolver) LetterheadURL(name string) string {
	if name == "" {
		return ""
	}
	return r.publicBase + letterHeadPath + name
}

// SignatureURL returns the directly embeddable URL for a signature file.
func (r *Resolver) SignatureURL(name string) string {
	if name == "" {
		return ""
	}
	return r.publicBase + signPath + name
}

// Letterhead starts (or reuses) the byte load of a letterhead image.
func (r *Resolver) Letterhead(_ context.Context, name string) *Image {
	return r.load(letterHeadPath+name, name)
}

// Signature starts (or reuses) the byte load of a signature image.
func (r *Resolver) Signature(_ context.Context, name string) *Image {
	return r.load(signPath+name, name)
}

// load runs the fetch detached from the requesting view's context: an
// aborted request must not poison the cache entry for later views. Failed
// loads are evicted so the next view refetches instead of reusing the
// error.
func (r *Resolver) load(path, name string) *Image {
	r.mu.Lock()
	if img, ok := r.cache[path]; ok {
		r.mu.Unlock()
		return img
	}
	img := &Image{Name: name}
	r.cache[path] = img
	r.mu.Unlock()

	go func() {
		data, err := r.source.Fetch(context.Background(), path)
		if err != nil {
			r.log.Error("image load failed", zap.String("path", path), zap.Error(err))
			r.mu.Lock()
			delete(r.cache, path)
			r.mu.Unlock()
		}
		img.complete(data, err)
	}()
	return img
}
