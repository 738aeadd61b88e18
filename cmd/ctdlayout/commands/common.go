package commands

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/agiangrant/ctdlayout/config"
	"github.com/agiangrant/ctdlayout/geometry"
	"github.com/agiangrant/ctdlayout/layout"
	"github.com/agiangrant/ctdlayout/treefile"
)

// Default container, a portrait phone screen.
const (
	defaultWidth  = 390
	defaultHeight = 844
)

// layoutFlags are the options every layout command shares.
type layoutFlags struct {
	configPath string
	width      float64
	height     float64
	responsive bool
	clip       bool
	debug      bool
}

func (f *layoutFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "Path to layout.toml (default: search the working directory)")
	fs.Float64Var(&f.width, "width", 0, "Container width (default: from the tree file, else 390)")
	fs.Float64Var(&f.height, "height", 0, "Container height (default: from the tree file, else 844)")
	fs.BoolVar(&f.responsive, "responsive", true, "Resolve breakpoint classes for the container width")
	fs.BoolVar(&f.clip, "clip", false, "Also write clip_to_bounds onto the tree")
	fs.BoolVar(&f.debug, "debug", false, "Trace measure and position steps to stderr")
}

func (f *layoutFlags) metrics() (config.Metrics, error) {
	if f.configPath != "" {
		m, err := config.Load(f.configPath)
		return m, errors.Wrap(err, "failed to load config")
	}
	m, err := config.LoadDefault()
	return m, errors.Wrap(err, "failed to load config")
}

// engineConfig builds a layout configuration. Each file gets its own Engine
// built from it.
func (f *layoutFlags) engineConfig(m config.Metrics) layout.Config {
	cfg := layout.DefaultConfig()
	cfg.Metrics = m
	cfg.Debug = f.debug
	cfg.Logger = log.New(os.Stderr, "ctdlayout: ", 0)
	return cfg
}

// container picks the layout size: flags, then the tree file, then the
// default screen.
func (f *layoutFlags) container(doc *treefile.Document) geometry.Size {
	size := geometry.NewSize(defaultWidth, defaultHeight)
	if doc.Container.Width > 0 {
		size.Width = doc.Container.Width
	}
	if doc.Container.Height > 0 {
		size.Height = doc.Container.Height
	}
	if f.width > 0 {
		size.Width = float32(f.width)
	}
	if f.height > 0 {
		size.Height = float32(f.height)
	}
	return size
}

// laidOut is one tree file after layout.
type laidOut struct {
	path      string
	doc       *treefile.Document
	container geometry.Size
	result    *layout.Result
}

// layoutFile loads a tree file and lays it out with a fresh engine. The
// tree itself receives the frame outputs too.
func (f *layoutFlags) layoutFile(path string, cfg layout.Config) (*laidOut, error) {
	doc, err := treefile.Load(path)
	if err != nil {
		return nil, err
	}

	size := f.container(doc)
	if f.responsive {
		doc.Root.ApplyResponsive(size.Width, cfg.Metrics.Breakpoints)
	}

	engine := layout.New(cfg)
	if f.clip {
		engine.ComputeLayoutWithClipping(doc.Root, size)
	} else {
		engine.ComputeLayout(doc.Root, size)
	}

	return &laidOut{
		path:      path,
		doc:       doc,
		container: size,
		result:    engine.Layout(doc.Root, size),
	}, nil
}

// outputPath swaps the extension of a tree file path.
func outputPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func requireFiles(fs *flag.FlagSet) ([]string, error) {
	files := fs.Args()
	if len(files) == 0 {
		return nil, errors.Errorf("%s: no tree files given", fs.Name())
	}
	return files, nil
}
