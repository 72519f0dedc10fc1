package config

const (
	defaultArchiveDir  = "~/.local/share/vidscribe"
	defaultLogDir      = "~/.local/share/vidscribe/logs"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultSampleLimit = 5
)

// Default returns a configuration populated with built-in defaults. Paths are
// unexpanded; Load handles normalization.
func Default() Config {
	return Config{
		Paths: Paths{
			ArchiveDir: defaultArchiveDir,
			LogDir:     defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Classify: Classify{
			SampleLimit: defaultSampleLimit,
		},
	}
}
