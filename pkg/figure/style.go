package figure

import (
	"fmt"
	"image/color"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// AxisTicks is the number of major ticks requested on each axis.
const AxisTicks = 8

// Style describes how every figure is typeset. It is a plain value: build it
// with Setup and hand it to New.
//
// Backend, UseTeX, TeXSystem, TeXPreamble and MathText are not read by New;
// they describe the toolchain for renderers that go through TeX.
type Style struct {
	Backend     string
	UseTeX      bool
	TeXSystem   string
	TeXPreamble string
	MathText    string

	// FontFamily is one of "serif", "sans-serif" or "monospace".
	FontFamily string

	FontSize       float64 // in pt
	TitleSize      float64
	LabelSize      float64
	TickLabelSize  float64
	LegendFontSize float64

	GridAlpha float64
	Ticks     int
}

// Setup derives the LaTeX style from settings.
func Setup(settings Settings) Style {
	size := settings.FontSize
	return Style{
		Backend:        "ps",
		UseTeX:         true,
		TeXSystem:      "pdflatex",
		TeXPreamble:    `\usepackage[T1]{fontenc} \usepackage{gensymb}`,
		MathText:       "regular",
		FontFamily:     "serif",
		FontSize:       size,
		TitleSize:      size,
		LabelSize:      size,
		TickLabelSize:  size,
		LegendFontSize: size,
		GridAlpha:      0.25,
		Ticks:          AxisTicks,
	}
}

var typefaces = map[string]string{
	"":           "Times-Roman",
	"serif":      "Times-Roman",
	"sans-serif": "Helvetica",
	"monospace":  "Courier",
}

// New returns an empty plot typeset with style.
func New(style Style) (*plot.Plot, error) {
	typeface, ok := typefaces[style.FontFamily]
	if !ok {
		return nil, fmt.Errorf("figure: unknown font family %q", style.FontFamily)
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	for _, text := range []struct {
		font *vg.Font
		size float64
	}{
		{&p.Title.Font, style.TitleSize},
		{&p.X.Label.Font, style.LabelSize},
		{&p.Y.Label.Font, style.LabelSize},
		{&p.X.Tick.Label.Font, style.TickLabelSize},
		{&p.Y.Tick.Label.Font, style.TickLabelSize},
		{&p.Legend.Font, style.LegendFontSize},
	} {
		f, err := vg.MakeFont(typeface, vg.Points(text.size))
		if err != nil {
			return nil, err
		}
		*text.font = f
	}
	if style.Ticks > 0 {
		p.X.Tick.Marker = hplot.Ticks{N: style.Ticks}
		p.Y.Tick.Marker = hplot.Ticks{N: style.Ticks}
	}
	if style.GridAlpha > 0 {
		grid := plotter.NewGrid()
		c := color.NRGBA{A: uint8(style.GridAlpha * 255)}
		grid.Vertical.Color = c
		grid.Horizontal.Color = c
		p.Add(grid)
	}
	return p, nil
}
