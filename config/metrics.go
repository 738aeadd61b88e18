// Package config holds the layout metrics tables: text style constants,
// button size presets, image and spacing defaults, and responsive
// breakpoints. Metrics are read from layout.toml.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/agiangrant/ctdlayout/tw"
)

// FileName is the metrics file name searched for by Find.
const FileName = "layout.toml"

// Metrics represents the layout.toml configuration file
type Metrics struct {
	DefaultSpacing   float32 `toml:"default_spacing"`
	ImageDefaultSize float32 `toml:"image_default_size"`

	Text        TextMetrics         `toml:"text"`
	Button      ButtonMetrics       `toml:"button"`
	Breakpoints tw.BreakpointConfig `toml:"breakpoints"`
}

// TextMetrics holds the fixed character-width model per font style.
type TextMetrics struct {
	Title   TextStyle `toml:"title"`
	Body    TextStyle `toml:"body"`
	Caption TextStyle `toml:"caption"`
}

// TextStyle is the heuristic metrics of one font style.
type TextStyle struct {
	CharWidth  float32 `toml:"char_width"`
	LineHeight float32 `toml:"line_height"`
	// FontSize is the size CharWidth and LineHeight were measured at.
	FontSize float32 `toml:"font_size"`
}

// ButtonMetrics holds the button size presets.
type ButtonMetrics struct {
	Small  ButtonPreset `toml:"small"`
	Medium ButtonPreset `toml:"medium"`
	Large  ButtonPreset `toml:"large"`
}

// ButtonPreset is one button size.
type ButtonPreset struct {
	BaseHeight        float32 `toml:"base_height"`
	CharWidth         float32 `toml:"char_width"`
	HorizontalPadding float32 `toml:"horizontal_padding"`
}

// Default returns the built-in metrics.
func Default() Metrics {
	return Metrics{
		DefaultSpacing:   0,
		ImageDefaultSize: 200,
		Text: TextMetrics{
			Title:   TextStyle{CharWidth: 12, LineHeight: 32, FontSize: 24},
			Body:    TextStyle{CharWidth: 8, LineHeight: 20, FontSize: 16},
			Caption: TextStyle{CharWidth: 6, LineHeight: 16, FontSize: 12},
		},
		Button: ButtonMetrics{
			Small:  ButtonPreset{BaseHeight: 32, CharWidth: 7, HorizontalPadding: 8},
			Medium: ButtonPreset{BaseHeight: 40, CharWidth: 8, HorizontalPadding: 12},
			Large:  ButtonPreset{BaseHeight: 48, CharWidth: 9, HorizontalPadding: 16},
		},
		Breakpoints: tw.DefaultBreakpoints(),
	}
}

// TextStyle returns the metrics for a style name. Unknown names use body.
func (m Metrics) TextStyle(name string) TextStyle {
	switch name {
	case "title":
		return m.Text.Title
	case "caption":
		return m.Text.Caption
	}
	return m.Text.Body
}

// ButtonPreset returns the preset for a size name. Unknown names use medium.
func (m Metrics) ButtonPreset(name string) ButtonPreset {
	switch name {
	case "small":
		return m.Button.Small
	case "large":
		return m.Button.Large
	}
	return m.Button.Medium
}

// Load reads metrics from path. A missing file yields the defaults; fields
// the file leaves out, or sets to zero or less, keep their defaults.
func Load(path string) (Metrics, error) {
	m := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return m, errors.Wrapf(err, "failed to read %s", path)
	}

	return Parse(data)
}

// Parse decodes metrics from TOML, filling gaps with defaults.
func Parse(data []byte) (Metrics, error) {
	var m Metrics
	if err := toml.Unmarshal(data, &m); err != nil {
		return Default(), errors.Wrap(err, "failed to parse layout metrics")
	}
	m.applyDefaults(Default())
	return m, nil
}

// Save writes metrics to path as TOML.
func Save(path string, m Metrics) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "failed to marshal metrics")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}

// searchPaths are checked in order by Find, relative to the working directory.
var searchPaths = []string{
	FileName,
	filepath.Join("config", FileName),
	filepath.Join(".centered", FileName),
}

// Find returns the first metrics file present in the working directory, or
// "" when there is none.
func Find() string {
	for _, p := range searchPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadDefault loads the file Find locates, or the defaults.
func LoadDefault() (Metrics, error) {
	path := Find()
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (m *Metrics) applyDefaults(d Metrics) {
	if m.DefaultSpacing < 0 {
		m.DefaultSpacing = d.DefaultSpacing
	}
	positive(&m.ImageDefaultSize, d.ImageDefaultSize)

	m.Text.Title.applyDefaults(d.Text.Title)
	m.Text.Body.applyDefaults(d.Text.Body)
	m.Text.Caption.applyDefaults(d.Text.Caption)

	m.Button.Small.applyDefaults(d.Button.Small)
	m.Button.Medium.applyDefaults(d.Button.Medium)
	m.Button.Large.applyDefaults(d.Button.Large)

	positive(&m.Breakpoints.SM, d.Breakpoints.SM)
	positive(&m.Breakpoints.MD, d.Breakpoints.MD)
	positive(&m.Breakpoints.LG, d.Breakpoints.LG)
	positive(&m.Breakpoints.XL, d.Breakpoints.XL)
	positive(&m.Breakpoints.XXL, d.Breakpoints.XXL)
}

func (s *TextStyle) applyDefaults(d TextStyle) {
	positive(&s.CharWidth, d.CharWidth)
	positive(&s.LineHeight, d.LineHeight)
	positive(&s.FontSize, d.FontSize)
}

func (p *ButtonPreset) applyDefaults(d ButtonPreset) {
	positive(&p.BaseHeight, d.BaseHeight)
	positive(&p.CharWidth, d.CharWidth)
	if p.HorizontalPadding <= 0 {
		p.HorizontalPadding = d.HorizontalPadding
	}
}

func positive(v *float32, def float32) {
	if *v <= 0 {
		*v = def
	}
}
