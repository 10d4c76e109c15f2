package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAudio(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.InputDir == c.Paths.StagingDir {
		return errors.New("paths.input_dir and paths.staging_dir must differ")
	}
	if strings.HasPrefix(c.Paths.OutputFile, c.Paths.StagingDir) {
		return errors.New("paths.output_file must not live inside paths.staging_dir")
	}
	return nil
}

func (c *Config) validateAudio() error {
	if c.Audio.MinPauseSeconds >= c.Audio.MaxPauseSeconds {
		return fmt.Errorf("audio.min_pause_seconds (%.2f) must be less than audio.max_pause_seconds (%.2f)",
			c.Audio.MinPauseSeconds, c.Audio.MaxPauseSeconds)
	}
	switch c.Audio.ChannelLayout {
	case "mono", "stereo":
	default:
		return fmt.Errorf("audio.channel_layout must be mono or stereo, got %q", c.Audio.ChannelLayout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "text", "json":
	default:
		return fmt.Errorf("logging.format must be console, text, or json, got %q", c.Logging.Format)
	}
	return nil
}
