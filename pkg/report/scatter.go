package report

import (
	"fmt"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"k8s.io/klog/v2"

	"github.com/vanyingenzi/udukoresho/pkg/figure"
	"github.com/vanyingenzi/udukoresho/pkg/logmetrics"
)

// TransferTimeScatter plots transfer time against the number of validated
// paths. Every (implementation, path count) pair is its own series, shaded
// by path count.
func TransferTimeScatter(cfg Config, metrics []logmetrics.Metrics) (*plot.Plot, error) {
	klog.V(2).Infof("Plotting transfer time scatter for %d runs", len(metrics))
	p, err := figure.New(cfg.Style)
	if err != nil {
		return nil, err
	}
	p.X.Label.Text = "Validated paths"
	p.Y.Label.Text = "Transfer time (s)"

	groups := groupBySeries(metrics)
	legend := make(map[string]bool)
	maxPaths := 0
	for _, k := range sortedSeries(groups) {
		var xys plotter.XYs
		for _, secs := range groups[k] {
			xys = append(xys, plotter.XY{X: float64(k.Paths), Y: secs})
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("%s with %d paths: %w", k.Implementation, k.Paths, err)
		}
		c, err := seriesColor(cfg, k.Implementation, k.Paths)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = c
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)

		if k.Paths > maxPaths {
			maxPaths = k.Paths
		}
		if !legend[k.Implementation] {
			legend[k.Implementation] = true
			thumb, err := legendThumbnail(cfg, k.Implementation)
			if err != nil {
				return nil, err
			}
			p.Legend.Add(k.Implementation, thumb)
		}
	}

	// Shades past this line are brighter than the base colour.
	if maxPaths > cfg.MaxPathCount {
		p.Add(hplot.VLine(float64(cfg.MaxPathCount), nil, nil))
	}
	p.X.Min = 0
	p.X.Max = float64(maxPaths + 1)
	fitAxis(&p.Y, transferTimes(metrics))
	return p, nil
}

func legendThumbnail(cfg Config, implementation string) (plot.Thumbnailer, error) {
	c, err := implementationColor(cfg, implementation)
	if err != nil {
		return nil, err
	}
	thumb, err := plotter.NewScatter(plotter.XYs{{}})
	if err != nil {
		return nil, err
	}
	thumb.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
	return thumb, nil
}
