package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stitch/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantStaging := filepath.Join(tempHome, ".local", "share", "stitch", "staging")
	if cfg.Paths.StagingDir != wantStaging {
		t.Fatalf("unexpected staging dir: got %q want %q", cfg.Paths.StagingDir, wantStaging)
	}
	if !filepath.IsAbs(cfg.Paths.InputDir) {
		t.Fatalf("expected absolute input dir, got %q", cfg.Paths.InputDir)
	}
	if filepath.Base(cfg.Paths.InputDir) != "audio_files" {
		t.Fatalf("unexpected input dir default: %q", cfg.Paths.InputDir)
	}
	if filepath.Base(cfg.Paths.OutputFile) != "final_audio.mp3" {
		t.Fatalf("unexpected output default: %q", cfg.Paths.OutputFile)
	}
	if cfg.Audio.Extension != ".mp3" {
		t.Fatalf("unexpected extension default: %q", cfg.Audio.Extension)
	}
	if cfg.Audio.SampleRate != 44100 || cfg.Audio.ChannelLayout != "stereo" {
		t.Fatalf("unexpected audio defaults: %+v", cfg.Audio)
	}
	if cfg.Audio.MinPauseSeconds != 2.0 || cfg.Audio.MaxPauseSeconds != 4.0 {
		t.Fatalf("unexpected pause bounds: %+v", cfg.Audio)
	}
	if cfg.Timeouts.Probe != 10 || cfg.Timeouts.Stage != 60 || cfg.Timeouts.Silence != 30 || cfg.Timeouts.Concat != 300 {
		t.Fatalf("unexpected timeout defaults: %+v", cfg.Timeouts)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesFileAndNormalizesExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stitch.toml")
	content := strings.Join([]string{
		"[paths]",
		`input_dir = "` + filepath.Join(dir, "takes") + `"`,
		`output_file = "` + filepath.Join(dir, "out.mp3") + `"`,
		`staging_dir = "` + filepath.Join(dir, "staging") + `"`,
		"[audio]",
		`extension = "MP3"`,
		"min_pause_seconds = 1.5",
		"max_pause_seconds = 2.5",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected existing config at %q, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Audio.Extension != ".mp3" {
		t.Fatalf("expected normalized extension .mp3, got %q", cfg.Audio.Extension)
	}
	if cfg.Audio.MinPauseSeconds != 1.5 || cfg.Audio.MaxPauseSeconds != 2.5 {
		t.Fatalf("unexpected pause bounds: %+v", cfg.Audio)
	}
}

func TestValidateRejectsInvertedPauseBounds(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.MinPauseSeconds = 4.0
	cfg.Audio.MaxPauseSeconds = 2.0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for min >= max pause bounds")
	}
}

func TestValidateRejectsUnknownChannelLayout(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.ChannelLayout = "5.1"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported channel layout")
	}
}

func TestValidateRejectsOutputInsideStaging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stitch.toml")
	content := strings.Join([]string{
		"[paths]",
		`staging_dir = "` + filepath.Join(dir, "staging") + `"`,
		`output_file = "` + filepath.Join(dir, "staging", "out.mp3") + `"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for output inside staging root")
	}
}

func TestCreateSampleWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[paths]") {
		t.Fatal("expected sample to contain [paths] section")
	}
}
