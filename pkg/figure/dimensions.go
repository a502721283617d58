// Package figure sizes and styles plots for inclusion in LaTeX documents.
package figure

const (
	// PointsPerInch is the TeX point, not the 72 pt PostScript point.
	PointsPerInch = 72.27
	// GoldenRatio is (√5-1)/2, the height/width aesthetic ratio.
	GoldenRatio = 0.6180339887498949
)

// Settings are the document parameters every figure is derived from.
type Settings struct {
	FontSize  float64 // in pt
	LineWidth float64 // in pt
}

// DefaultSettings matches a single IEEEtran column.
func DefaultSettings() Settings {
	return Settings{FontSize: 10, LineWidth: 252}
}

// Dimensions is a physical figure size in inches.
type Dimensions struct {
	Width  float64
	Height float64
}

// Options overrides parts of the computed size. Figsize wins over everything;
// otherwise Width and Height are applied independently.
type Options struct {
	Width   *float64
	Height  *float64
	Figsize *Dimensions
}

// ComputeDimensions returns the size of a figure spanning lineWidthPt.
// A value left unset in opts is always derived from lineWidthPt, even when
// the other one is given.
func ComputeDimensions(lineWidthPt float64, opts Options) Dimensions {
	if opts.Figsize != nil {
		return *opts.Figsize
	}
	width := lineWidthPt / PointsPerInch
	height := width * GoldenRatio
	if opts.Width != nil {
		width = *opts.Width
	}
	if opts.Height != nil {
		height = *opts.Height
	}
	return Dimensions{Width: width, Height: height}
}
