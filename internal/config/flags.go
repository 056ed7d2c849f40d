package config

import "flag"

// Overrides holds command-line values that take priority over the config file.
// Zero values leave the loaded setting untouched.
type Overrides struct {
	ConfigPath string
	Debug      bool
	LogFile    string
	Steps      int
	Strict     bool
	OutputDir  string
	View       string
	Width      int
	Height     int
}

// RegisterFlags binds the global override flags to fs.
func (o *Overrides) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&o.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&o.LogFile, "log", "", "Write logs to this file")
	fs.IntVar(&o.Steps, "steps", 0, "Default tessellation steps for curved paths")
	fs.BoolVar(&o.Strict, "strict", false, "Reject degenerate intersections")
}

// RegisterPreviewFlags binds the preview override flags to fs.
func (o *Overrides) RegisterPreviewFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.OutputDir, "o", "", "Output directory for preview images")
	fs.StringVar(&o.View, "view", "", "Preview view: front, top or side")
	fs.IntVar(&o.Width, "width", 0, "Preview width in pixels")
	fs.IntVar(&o.Height, "height", 0, "Preview height in pixels")
}

// ApplyFlags applies CLI overrides to the config.
func ApplyFlags(cfg *Config, o Overrides) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
	if o.Steps > 0 {
		cfg.Build.DefaultSteps = o.Steps
	}
	if o.Strict {
		cfg.Build.Strict = true
	}
	if o.OutputDir != "" {
		cfg.Preview.OutputDir = o.OutputDir
	}
	if o.View != "" {
		cfg.Preview.View = o.View
	}
	if o.Width > 0 {
		cfg.Preview.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Preview.Height = o.Height
	}
}
