package assets

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingSource struct {
	fetches int32
	data    []byte
}

func (s *countingSource) Fetch(_ context.Context, _ string) ([]byte, error) {
	atomic.AddInt32(&s.fetches, 1)
	return s.data, nil
}

func waitComplete(t *testing.T, img *Image) {
	t.Helper()
	deadline := time.After(time.Second)
	for !img.Complete() {
		select {
		case <-deadline:
			t.Fatal("image never completed")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestResolverURLs(t *testing.T) {
	r := NewResolver(&countingSource{}, "https://backend.example.com", nil)
	if got := r.LetterheadURL("AceB.png"); got != "https://backend.example.com/api/public/assets/images/letterHead/AceB.png" {
		t.Errorf("letterhead url = %q", got)
	}
	if got := r.SignatureURL("AceB_sign.png"); got != "https://backend.example.com/api/public/assets/images/sign/AceB_sign.png" {
		t.Errorf("signature url = %q", got)
	}
	if got := r.LetterheadURL(""); got != "" {
		t.Errorf("empty name url = %q, want empty", got)
	}
}

func TestResolverCachesLoads(t *testing.T) {
	src := &countingSource{data: []byte("img")}
	r := NewResolver(src, "https://backend.example.com", nil)

	first := r.Letterhead(context.Background(), "AceB.png")
	second := r.Letterhead(context.Background(), "AceB.png")
	if first != second {
		t.Error("same path resolved to different images")
	}
	waitComplete(t, first)
	if n := atomic.LoadInt32(&src.fetches); n != 1 {
		t.Errorf("fetches = %d, want 1", n)
	}

	// Letterhead and signature namespaces stay distinct.
	sig := r.Signature(context.Background(), "AceB.png")
	waitComplete(t, sig)
	if sig == first {
		t.Error("signature shared the letterhead cache entry")
	}
}

type flakySource struct {
	fetches int32
	data    []byte
}

func (s *flakySource) Fetch(_ context.Context, _ string) ([]byte, error) {
	if atomic.AddInt32(&s.fetches, 1) == 1 {
		return nil, errors.New("connection reset")
	}
	return s.data, nil
}

func TestResolverRefetchesAfterFailure(t *testing.T) {
	src := &flakySource{data: []byte("img")}
	r := NewResolver(src, "https://backend.example.com", nil)

	first := r.Letterhead(context.Background(), "AceB.png")
	waitComplete(t, first)
	if first.Err() == nil {
		t.Fatal("first load should have failed")
	}

	// The failed entry is evicted; the next view fetches again.
	var second *Image
	deadline := time.After(time.Second)
	for {
		second = r.Letterhead(context.Background(), "AceB.png")
		if second != first {
			break
		}
		select {
		case <-deadline:
			t.Fatal("errored image never left the cache")
		case <-time.After(5 * time.Millisecond):
		}
	}
	waitComplete(t, second)
	if err := second.Err(); err != nil {
		t.Fatalf("retry after transient failure: %v", err)
	}
	if string(second.Bytes()) != "img" {
		t.Error("retry returned wrong bytes")
	}
	if n := atomic.LoadInt32(&src.fetches); n != 2 {
		t.Errorf("fetches = %d, want 2", n)
	}
}

type ctxAwareSource struct {
	data []byte
}

func (s *ctxAwareSource) Fetch(ctx context.Context, _ string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.data, nil
}

func TestResolverLoadOutlivesCaller(t *testing.T) {
	r := NewResolver(&ctxAwareSource{data: []byte("img")}, "https://backend.example.com", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	img := r.Letterhead(ctx, "AceB.png")
	waitComplete(t, img)

	// An aborted request must not fail the shared load.
	if err := img.Err(); err != nil {
		t.Fatalf("load inherited the caller's canceled context: %v", err)
	}
	if string(img.Bytes()) != "img" {
		t.Error("load returned wrong bytes")
	}
}
