package preflight

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stitch/internal/config"
	"stitch/internal/ffmpeg"
)

type stubRunner struct {
	err error
}

func (s stubRunner) Run(context.Context, ffmpeg.Request) (ffmpeg.Result, error) {
	if s.err != nil {
		return ffmpeg.Result{}, s.err
	}
	return ffmpeg.Result{Stdout: "ffmpeg version 7.1 Copyright (c) 2000-2024\n"}, nil
}

func TestCheckFFmpeg_OK(t *testing.T) {
	result := CheckFFmpeg(context.Background(), stubRunner{}, time.Second)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result.Detail == "" {
		t.Fatal("expected version detail")
	}
}

func TestCheckFFmpeg_Unavailable(t *testing.T) {
	result := CheckFFmpeg(context.Background(), stubRunner{err: errors.New("not found")}, time.Second)
	if result.Passed {
		t.Fatal("expected failure when probe errors")
	}
}

func TestCheckInputDirectory_OK(t *testing.T) {
	result := CheckInputDirectory(t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckInputDirectory_NotExist(t *testing.T) {
	result := CheckInputDirectory(filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckInputDirectory_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.mp3")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckInputDirectory(f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckWritableLocation_Existing(t *testing.T) {
	result := CheckWritableLocation("Staging directory", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckWritableLocation_MissingButCreatable(t *testing.T) {
	result := CheckWritableLocation("Staging directory", filepath.Join(t.TempDir(), "a", "b"))
	if !result.Passed {
		t.Fatalf("expected pass for creatable path, got: %s", result.Detail)
	}
}

func TestCheckFreeSpace(t *testing.T) {
	result := CheckFreeSpace(t.TempDir())
	if result.Detail == "" {
		t.Fatal("expected detail with available space")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(context.Background(), nil, stubRunner{}); results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_HealthyConfig(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.InputDir = base
	cfg.Paths.StagingDir = filepath.Join(base, "staging")
	cfg.Paths.OutputFile = filepath.Join(base, "final_audio.mp3")

	results := RunAll(context.Background(), &cfg, stubRunner{})
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
}
