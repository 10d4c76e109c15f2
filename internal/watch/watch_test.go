package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"stitch/internal/logging"
	"stitch/internal/watch"
)

func TestWatcherRunsAfterSettle(t *testing.T) {
	dir := t.TempDir()
	var runs atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := watch.New(dir, ".mp3", 50*time.Millisecond, logging.NewNop(), func(context.Context) error {
		runs.Add(1)
		return nil
	})
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "take_1700000000001.mp3"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for runs.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("pipeline never ran after input change")
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("expected context.Canceled on shutdown, got %v", err)
	}
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	var runs atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := watch.New(dir, ".mp3", 50*time.Millisecond, logging.NewNop(), func(context.Context) error {
		runs.Add(1)
		return nil
	})
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)
	if runs.Load() != 0 {
		t.Fatalf("expected no runs for unrelated file, got %d", runs.Load())
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := watch.New(filepath.Join(t.TempDir(), "nope"), ".mp3", time.Second, logging.NewNop(), func(context.Context) error { return nil })
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
