package assets

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGateZeroImages(t *testing.T) {
	g := NewGate(nil)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := g.Wait(ctx); err != nil {
		t.Fatalf("empty gate should open immediately: %v", err)
	}
}

func TestGateWaitsForAll(t *testing.T) {
	a := &Image{Name: "a"}
	b := &Image{Name: "b"}
	g := NewGate([]*Image{a, b})

	done := make(chan error, 1)
	go func() { done <- g.Wait(context.Background()) }()

	a.complete([]byte("a"), nil)
	select {
	case <-done:
		t.Fatal("gate opened before every image completed")
	case <-time.After(20 * time.Millisecond):
	}

	b.complete([]byte("b"), nil)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("wait: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("gate never opened")
	}
}

func TestGateAlreadyLoaded(t *testing.T) {
	g := NewGate([]*Image{NewLoadedImage("a", []byte("a"))})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := g.Wait(ctx); err != nil {
		t.Fatalf("pre-loaded gate: %v", err)
	}
}

func TestGateReportsLoadError(t *testing.T) {
	img := &Image{Name: "a"}
	loadErr := errors.New("fetch failed")
	img.complete(nil, loadErr)

	g := NewGate([]*Image{img})
	if err := g.Wait(context.Background()); !errors.Is(err, loadErr) {
		t.Fatalf("err = %v, want %v", err, loadErr)
	}
}

func TestGateContextCancel(t *testing.T) {
	g := NewGate([]*Image{{Name: "never"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
