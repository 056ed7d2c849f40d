package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if cfg.Build.DefaultSteps != 16 {
		t.Errorf("expected default steps 16, got %d", cfg.Build.DefaultSteps)
	}
	if cfg.Build.Strict {
		t.Error("expected strict to be false by default")
	}

	if cfg.Preview.Width != 512 || cfg.Preview.Height != 512 {
		t.Errorf("expected preview 512x512, got %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.Preview.View != "front" {
		t.Errorf("expected view 'front', got %s", cfg.Preview.View)
	}
	if cfg.Preview.OutputDir != "previews" {
		t.Errorf("expected output dir 'previews', got %s", cfg.Preview.OutputDir)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lofttool.yaml")

	yamlContent := `
logging:
  level: "debug"
  log_file: "lofttool.log"

build:
  default_steps: 48
  strict: true

preview:
  width: 1024
  view: "top"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "lofttool.log" {
		t.Errorf("expected log file 'lofttool.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Build.DefaultSteps != 48 {
		t.Errorf("expected default steps 48, got %d", cfg.Build.DefaultSteps)
	}
	if !cfg.Build.Strict {
		t.Error("expected strict to be true")
	}
	if cfg.Preview.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Preview.Width)
	}
	// Unset keys keep their defaults.
	if cfg.Preview.Height != 512 {
		t.Errorf("expected height 512 from defaults, got %d", cfg.Preview.Height)
	}
	if cfg.Preview.View != "top" {
		t.Errorf("expected view 'top', got %s", cfg.Preview.View)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
build:
  default_steps: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/lofttool.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	if _, err := Load("/nonexistent/path/lofttool.yaml"); err == nil {
		t.Error("expected error for missing explicit config, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv(EnvPath, "")

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("build:\n  default_steps: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		o      Overrides
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			o:    Overrides{Debug: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "steps and strict",
			o:    Overrides{Steps: 64, Strict: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Build.DefaultSteps != 64 {
					t.Errorf("expected steps 64, got %d", cfg.Build.DefaultSteps)
				}
				if !cfg.Build.Strict {
					t.Error("expected strict to be enabled")
				}
			},
		},
		{
			name: "preview overrides",
			o:    Overrides{OutputDir: "out", View: "side", Width: 800, Height: 600},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Preview.OutputDir != "out" {
					t.Errorf("expected output dir 'out', got %s", cfg.Preview.OutputDir)
				}
				if cfg.Preview.View != "side" {
					t.Errorf("expected view 'side', got %s", cfg.Preview.View)
				}
				if cfg.Preview.Width != 800 || cfg.Preview.Height != 600 {
					t.Errorf("expected 800x600, got %dx%d", cfg.Preview.Width, cfg.Preview.Height)
				}
			},
		},
		{
			name: "zero overrides keep defaults",
			o:    Overrides{},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Build.DefaultSteps != 16 {
					t.Errorf("expected steps 16, got %d", cfg.Build.DefaultSteps)
				}
				if cfg.Logging.Level != "info" {
					t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			ApplyFlags(cfg, tt.o)
			tt.verify(t, cfg)
		})
	}
}

func TestRegisterFlags(t *testing.T) {
	var o Overrides
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.RegisterFlags(fs)
	o.RegisterPreviewFlags(fs)

	args := []string{"-config", "my.yaml", "-debug", "-steps", "12", "-view", "top", "-o", "shots"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if o.ConfigPath != "my.yaml" || !o.Debug || o.Steps != 12 || o.View != "top" || o.OutputDir != "shots" {
		t.Errorf("unexpected overrides: %+v", o)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lofttool.yaml")

	yamlContent := `
preview:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	ApplyFlags(cfg, Overrides{Width: 1920})

	// Width should be from flag (1920), not file (1600)
	if cfg.Preview.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Preview.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Preview.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Preview.Height)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lofttool.yaml")

	cfg := Default()
	cfg.Build.DefaultSteps = 32
	cfg.Preview.View = "side"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", *loaded, *cfg)
	}
}

func TestFindConfigFileEnv(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// A file in the working directory loses to the environment.
	if err := os.WriteFile(FileName, []byte("build:\n  default_steps: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create local config: %v", err)
	}
	envPath := filepath.Join(tmpDir, "from-env.yaml")
	if err := os.WriteFile(envPath, []byte("build:\n  default_steps: 40\n"), 0644); err != nil {
		t.Fatalf("failed to create env config: %v", err)
	}
	t.Setenv(EnvPath, envPath)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Build.DefaultSteps != 40 {
		t.Errorf("expected steps 40 from %s, got %d", EnvPath, cfg.Build.DefaultSteps)
	}

	// A missing env file is an error, not a silent fallback.
	t.Setenv(EnvPath, filepath.Join(tmpDir, "missing.yaml"))
	if _, err := Load(""); err == nil {
		t.Error("expected error for missing env config")
	}
}

func TestSave(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))

	cfg := Default()
	cfg.Logging.Level = "warn"
	path, err := cfg.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if filepath.Dir(path) != ConfigDir() || filepath.Base(path) != FileName {
		t.Errorf("saved to %s, want %s in %s", path, FileName, ConfigDir())
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Logging.Level != "warn" {
		t.Errorf("expected level 'warn', got %s", loaded.Logging.Level)
	}
}
