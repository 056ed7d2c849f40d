// lofttool builds loft jobs and previews the resulting meshes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/archloft/internal/config"
	"github.com/Faultbox/archloft/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	// Console logging until a command loads its config.
	if err := logger.Init("info", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	var err error
	switch command {
	case "build", "b":
		err = cmdBuild(args, os.Stdout)
	case "stations", "st":
		err = cmdStations(args, os.Stdout)
	case "preview", "p":
		err = cmdPreview(args, os.Stdout)
	case "config":
		err = cmdConfig(args, os.Stdout)
	case "shapes":
		cmdShapes(os.Stdout)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stdout)
		os.Exit(1)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `lofttool - profile/path loft kernel utility

Usage:
  lofttool <command> [options]

Commands:
  build <job.yaml>...                Generate meshes and print their statistics
  stations <job.yaml>                Print the resolved path stations per offset
  preview [-o dir] [-view v] <job>   Render a PNG preview (front, top or side)
  config [-save] [-out file]         Print the effective config, optionally saving it
  shapes                             List path shapes

Options (all commands except shapes):
  -config <file>   Config file (default $LOFTTOOL_CONFIG, then ./lofttool.yaml)
  -debug           Enable debug logging
  -log <file>      Write logs to a rotating file
  -steps <n>       Default tessellation for curved paths
  -strict          Reject degenerate intersections

Examples:
  lofttool build frame.yaml arch.yaml
  lofttool stations -steps 8 arch.yaml
  lofttool preview -o previews -view top baseboard.yaml
  lofttool config -steps 32 -save`)
}

// setup parses flags, loads config and initializes the logger.
// It returns the config and the remaining positional arguments.
// extra registers command specific flags and may be nil.
func setup(name string, args []string, preview bool, extra func(*flag.FlagSet)) (*config.Config, []string, error) {
	var o config.Overrides
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	o.RegisterFlags(fs)
	if preview {
		o.RegisterPreviewFlags(fs)
	}
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	config.ApplyFlags(cfg, o)

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	return cfg, fs.Args(), nil
}
