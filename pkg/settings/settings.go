// Package settings loads the plotter's YAML configuration.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/vanyingenzi/udukoresho/pkg/figure"
	"github.com/vanyingenzi/udukoresho/pkg/logmetrics"
	"github.com/vanyingenzi/udukoresho/pkg/palette"
)

type Experiment struct {
	Implementation string `yaml:"implementation"`
	ServerLog      string `yaml:"server_log"`
	TimeFile       string `yaml:"time_file"`
}

type Settings struct {
	ExecDir      string            `yaml:"exec_dir"`
	PlotDir      string            `yaml:"plot_dir"`
	FontSize     float64           `yaml:"font_size"`  // in pt
	LineWidth    float64           `yaml:"line_width"` // in pt
	Width        *float64          `yaml:"width"`      // in inches
	Height       *float64          `yaml:"height"`     // in inches
	MaxPathCount int               `yaml:"max_path_count"`
	Colors       map[string]string `yaml:"colors"`
	Experiments  []Experiment      `yaml:"experiments"`
}

const DefaultPlotDir = "plots"

// Load reads the settings file at path and fills in defaults.
func Load(path string) (*Settings, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.UnmarshalStrict(file, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	s.applyDefaults()
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

func (s *Settings) applyDefaults() {
	defaults := figure.DefaultSettings()
	if s.FontSize == 0 {
		s.FontSize = defaults.FontSize
	}
	if s.LineWidth == 0 {
		s.LineWidth = defaults.LineWidth
	}
	if s.MaxPathCount == 0 {
		s.MaxPathCount = palette.DefaultMaxPathCount
	}
	if s.PlotDir == "" {
		s.PlotDir = DefaultPlotDir
	}
}

func (s *Settings) validate() error {
	if s.MaxPathCount < 0 {
		return fmt.Errorf("max_path_count must be positive, got %d", s.MaxPathCount)
	}
	if len(s.Experiments) == 0 {
		return fmt.Errorf("no experiments listed")
	}
	for i, e := range s.Experiments {
		if e.Implementation == "" || e.ServerLog == "" || e.TimeFile == "" {
			return fmt.Errorf("experiment %d: implementation, server_log and time_file are required", i)
		}
	}
	return nil
}

// Figure returns the document settings shared by every chart.
func (s *Settings) Figure() figure.Settings {
	return figure.Settings{FontSize: s.FontSize, LineWidth: s.LineWidth}
}

// Dimensions returns the chart size, honouring width and height overrides.
func (s *Settings) Dimensions() figure.Dimensions {
	return figure.ComputeDimensions(s.LineWidth, figure.Options{Width: s.Width, Height: s.Height})
}

// Registry returns the default colour registry overridden by s.Colors.
func (s *Settings) Registry() (*palette.Registry, error) {
	return palette.DefaultRegistry().Merge(s.Colors)
}

// Runs resolves every experiment against ExecDir.
func (s *Settings) Runs() []logmetrics.Run {
	runs := make([]logmetrics.Run, 0, len(s.Experiments))
	for _, e := range s.Experiments {
		runs = append(runs, logmetrics.Run{
			Implementation: e.Implementation,
			ServerLog:      s.resolve(e.ServerLog),
			TimeFile:       s.resolve(e.TimeFile),
		})
	}
	return runs
}

// OutputDir is where charts are written.
func (s *Settings) OutputDir() string {
	return s.resolve(s.PlotDir)
}

func (s *Settings) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.ExecDir, p)
}
