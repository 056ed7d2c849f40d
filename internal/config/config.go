// Package config handles lofttool configuration loading and management.
package config

// Config holds all lofttool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Build   BuildConfig   `yaml:"build"`
	Preview PreviewConfig `yaml:"preview"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// BuildConfig holds defaults applied to jobs that leave them unset.
type BuildConfig struct {
	DefaultSteps int  `yaml:"default_steps"` // Used when a curved path has no steps
	Strict       bool `yaml:"strict"`        // Reject degenerate intersections
}

// PreviewConfig holds PNG preview settings.
type PreviewConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	OutputDir string `yaml:"output_dir"`
	View      string `yaml:"view"` // front, top or side
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Build: BuildConfig{
			DefaultSteps: 16,
			Strict:       false,
		},
		Preview: PreviewConfig{
			Width:     512,
			Height:    512,
			OutputDir: "previews",
			View:      "front",
		},
	}
}
