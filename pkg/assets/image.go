// Package assets resolves branch letterhead and signature images. A
// letterhead resolves two ways: to a public URL the HTML print view embeds
// directly, and to fetched bytes encoded as a base64 data string for the PDF
// annotation pass, which cannot reference external URLs. Successfully
// resolved images are cached for the lifetime of one Resolver; failures are
// not cached.
package assets

import (
	"encoding/base64"
	"strings"
	"sync"
)

// Image is one referenced image and its load state. It mirrors the browser
// image element: it is either still loading, complete with data, or complete
// with an error.
type Image struct {
	Name string

	mu   sync.Mutex
	data []byte
	err  error
	done bool
	subs []func()
}

// Complete reports whether loading has finished, successfully or not.
func (i *Image) Complete() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.done
}

// OnLoad registers fn to run once loading finishes. If the image is already
// complete, fn runs immediately on the calling goroutine.
func (i *Image) OnLoad(fn func()) {
	i.mu.Lock()
	if i.done {
		i.mu.Unlock()
		fn()
		return
	}
	i.subs = append(i.subs, fn)
	i.mu.Unlock()
}

// Bytes returns the fetched data, nil until complete or on failure.
func (i *Image) Bytes() []byte {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.data
}

// Err returns the load error, if any.
func (i *Image) Err() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.err
}

// DataURI returns the image as a base64 data string, empty until loaded.
func (i *Image) DataURI() string {
	b := i.Bytes()
	if len(b) == 0 {
		return ""
	}
	mime := "image/jpeg"
	if SniffImageType(b) == "PNG" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b)
}

// SniffImageType reports the PDF-library image type name for raw bytes,
// "PNG" or "JPEG".
func SniffImageType(b []byte) string {
	if len(b) >= 8 && b[0] == 0x89 && b[1] == 'P' && b[2] == 'N' && b[3] == 'G' {
		return "PNG"
	}
	return "JPEG"
}

// DecodeDataURI returns the raw bytes of a base64 data string, splitting at
// the comma the way the annotation pass consumes it.
func DecodeDataURI(uri string) ([]byte, error) {
	if idx := strings.IndexByte(uri, ','); idx >= 0 {
		uri = uri[idx+1:]
	}
	return base64.StdEncoding.DecodeString(uri)
}

func (i *Image) complete(data []byte, err error) {
	i.mu.Lock()
	if i.done {
		i.mu.Unlock()
		return
	}
	i.data, i.err, i.done = data, err, true
	subs := i.subs
	i.subs = nil
	i.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// NewLoadedImage wraps bytes already in hand as a complete Image.
func NewLoadedImage(name string, data []byte) *Image {
	return &Image{Name: name, data: data, done: true}
}
