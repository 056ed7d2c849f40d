package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/archloft/internal/config"
	"github.com/Faultbox/archloft/internal/job"
	"github.com/Faultbox/archloft/internal/logger"
	"github.com/Faultbox/archloft/internal/preview"
	"github.com/Faultbox/archloft/pkg/loft"
)

// loaded is a job file resolved into kernel inputs.
type loaded struct {
	name   string
	prof   *loft.Profile
	kind   loft.ShapeKind
	params loft.Params
}

func loadJob(path string, cfg *config.Config) (*loaded, error) {
	j, err := job.Load(path)
	if err != nil {
		return nil, err
	}
	j.ApplyDefaults(job.Defaults{Steps: cfg.Build.DefaultSteps, Strict: cfg.Build.Strict})

	prof, kind, params, err := j.Inputs()
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", path, err)
	}

	name := j.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &loaded{name: name, prof: prof, kind: kind, params: params}, nil
}

func (l *loaded) generate() (*loft.Mesh, error) {
	m, err := loft.Generate(l.prof, l.kind, l.params)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", l.name, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("job %s: %w", l.name, err)
	}
	return m, nil
}

func cmdBuild(args []string, w io.Writer) error {
	cfg, files, err := setup("build", args, false, nil)
	if err != nil {
		return err
	}
	if len(files) < 1 {
		return errors.New("usage: lofttool build <job.yaml>...")
	}

	log := logger.Named("build")
	for _, path := range files {
		l, err := loadJob(path, cfg)
		if err != nil {
			return err
		}
		m, err := l.generate()
		if err != nil {
			return err
		}

		mats := make(map[loft.MaterialID]int)
		for _, id := range m.MaterialIDs {
			mats[id]++
		}
		b := m.Bounds()

		fmt.Fprintf(w, "%s (%s)\n", l.name, l.kind)
		fmt.Fprintf(w, "  Vertices:  %d\n", len(m.Vertices))
		fmt.Fprintf(w, "  Faces:     %d\n", len(m.Faces))
		fmt.Fprintf(w, "  Triangles: %d\n", m.TriangleCount())
		fmt.Fprintf(w, "  Materials: %d\n", len(mats))
		fmt.Fprintf(w, "  Bounds:    (%.4f, %.4f, %.4f) - (%.4f, %.4f, %.4f)\n",
			b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)

		log.Debug("mesh generated",
			zap.String("job", l.name),
			zap.Stringer("shape", l.kind),
			zap.Int("vertices", len(m.Vertices)),
			zap.Int("faces", len(m.Faces)))
	}
	return nil
}

func cmdStations(args []string, w io.Writer) error {
	cfg, files, err := setup("stations", args, false, nil)
	if err != nil {
		return err
	}
	if len(files) != 1 {
		return errors.New("usage: lofttool stations <job.yaml>")
	}

	l, err := loadJob(files[0], cfg)
	if err != nil {
		return err
	}
	paths, err := loft.Stations(l.kind, l.prof, l.params)
	if err != nil {
		return fmt.Errorf("job %s: %w", l.name, err)
	}

	fmt.Fprintf(w, "%s (%s)\n", l.name, l.kind)
	for b, p := range paths {
		fmt.Fprintf(w, "x=%.4f  %d stations  length %.4f\n", l.prof.Xs[b], len(p.Points), p.Length())
		v := p.V()
		for i, pt := range p.Points {
			fmt.Fprintf(w, "  %3d  (%9.4f, %9.4f)  v=%.4f\n", i, pt.X, pt.Y, v[i])
		}
	}
	return nil
}

func cmdPreview(args []string, w io.Writer) error {
	cfg, files, err := setup("preview", args, true, nil)
	if err != nil {
		return err
	}
	if len(files) < 1 {
		return errors.New("usage: lofttool preview [-o dir] [-view front|top|side] <job.yaml>...")
	}

	view, err := preview.ParseView(cfg.Preview.View)
	if err != nil {
		return err
	}
	opts := preview.DefaultOptions()
	opts.Width = cfg.Preview.Width
	opts.Height = cfg.Preview.Height
	opts.View = view

	capture := preview.NewCapture(cfg.Preview.OutputDir)
	log := logger.Named("preview")
	for _, path := range files {
		l, err := loadJob(path, cfg)
		if err != nil {
			return err
		}
		m, err := l.generate()
		if err != nil {
			return err
		}
		img, err := preview.Render(m, opts)
		if err != nil {
			return fmt.Errorf("job %s: %w", l.name, err)
		}
		out, err := capture.Save(img, l.name, view)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
		log.Info("preview saved", zap.String("job", l.name), zap.String("path", out))
	}
	return nil
}

func cmdConfig(args []string, w io.Writer) error {
	var save bool
	var out string
	cfg, rest, err := setup("config", args, true, func(fs *flag.FlagSet) {
		fs.BoolVar(&save, "save", false, "Save to the user config directory")
		fs.StringVar(&out, "out", "", "Save to this file")
	})
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return errors.New("usage: lofttool config [-save] [-out file]")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	log := logger.Named("config")
	if out != "" {
		if err := cfg.SaveTo(out); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		log.Info("config saved", zap.String("path", out))
	}
	if save {
		path, err := cfg.Save()
		if err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		log.Info("config saved", zap.String("path", path))
	}
	return nil
}

func cmdShapes(w io.Writer) {
	for _, k := range loft.Shapes() {
		status := "supported"
		if !k.Supported() {
			status = "not implemented"
		}
		if k.Curved() {
			status += ", uses steps"
		}
		fmt.Fprintf(w, "  %-14s %s\n", k, status)
	}
}
