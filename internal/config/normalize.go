package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAudio()
	c.normalizeTimeouts()
	c.normalizeWatch()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.InputDir) == "" {
		c.Paths.InputDir = defaultInputDir
	}
	if c.Paths.InputDir, err = expandPath(c.Paths.InputDir); err != nil {
		return fmt.Errorf("paths.input_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputFile) == "" {
		c.Paths.OutputFile = defaultOutputFile
	}
	if c.Paths.OutputFile, err = expandPath(c.Paths.OutputFile); err != nil {
		return fmt.Errorf("paths.output_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.StagingDir) == "" {
		c.Paths.StagingDir = defaultStagingDir
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.HistoryDB) == "" {
		c.Paths.HistoryDB = defaultHistoryDB
	}
	if c.Paths.HistoryDB, err = expandPath(c.Paths.HistoryDB); err != nil {
		return fmt.Errorf("paths.history_db: %w", err)
	}
	return nil
}

func (c *Config) normalizeAudio() {
	ext := strings.ToLower(strings.TrimSpace(c.Audio.Extension))
	if ext == "" {
		ext = defaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Audio.Extension = ext

	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = defaultSampleRate
	}
	c.Audio.ChannelLayout = strings.TrimSpace(c.Audio.ChannelLayout)
	if c.Audio.ChannelLayout == "" {
		c.Audio.ChannelLayout = defaultChannelLayout
	}
	if c.Audio.MinPauseSeconds <= 0 {
		c.Audio.MinPauseSeconds = defaultMinPause
	}
	if c.Audio.MaxPauseSeconds <= 0 {
		c.Audio.MaxPauseSeconds = defaultMaxPause
	}
}

func (c *Config) normalizeTimeouts() {
	if c.Timeouts.Probe <= 0 {
		c.Timeouts.Probe = defaultProbeTimeout
	}
	if c.Timeouts.Stage <= 0 {
		c.Timeouts.Stage = defaultStageTimeout
	}
	if c.Timeouts.Silence <= 0 {
		c.Timeouts.Silence = defaultSilenceTimeout
	}
	if c.Timeouts.Concat <= 0 {
		c.Timeouts.Concat = defaultConcatTimeout
	}
}

func (c *Config) normalizeWatch() {
	if c.Watch.SettleSeconds <= 0 {
		c.Watch.SettleSeconds = defaultSettleSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
