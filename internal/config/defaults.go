package config

const (
	defaultInputDir       = "audio_files"
	defaultOutputFile     = "final_audio.mp3"
	defaultStagingDir     = "~/.local/share/stitch/staging"
	defaultHistoryDB      = "~/.local/share/stitch/history.db"
	defaultExtension      = ".mp3"
	defaultSampleRate     = 44100
	defaultChannelLayout  = "stereo"
	defaultMinPause       = 2.0
	defaultMaxPause       = 4.0
	defaultProbeTimeout   = 10
	defaultStageTimeout   = 60
	defaultSilenceTimeout = 30
	defaultConcatTimeout  = 300
	defaultSettleSeconds  = 2
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir:   defaultInputDir,
			OutputFile: defaultOutputFile,
			StagingDir: defaultStagingDir,
			HistoryDB:  defaultHistoryDB,
		},
		Audio: Audio{
			Extension:       defaultExtension,
			SampleRate:      defaultSampleRate,
			ChannelLayout:   defaultChannelLayout,
			MinPauseSeconds: defaultMinPause,
			MaxPauseSeconds: defaultMaxPause,
		},
		Timeouts: Timeouts{
			Probe:   defaultProbeTimeout,
			Stage:   defaultStageTimeout,
			Silence: defaultSilenceTimeout,
			Concat:  defaultConcatTimeout,
		},
		Watch: Watch{
			SettleSeconds: defaultSettleSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
