package report

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"k8s.io/klog/v2"

	"github.com/vanyingenzi/udukoresho/pkg/figure"
	"github.com/vanyingenzi/udukoresho/pkg/logmetrics"
)

// TransferTimeCDF plots the empirical CDF of transfer times, one line per
// implementation. Lines differ by colour and dash pattern.
func TransferTimeCDF(cfg Config, metrics []logmetrics.Metrics) (*plot.Plot, error) {
	klog.V(2).Infof("Plotting transfer time CDF for %d runs", len(metrics))
	p, err := figure.New(cfg.Style)
	if err != nil {
		return nil, err
	}
	p.X.Label.Text = "Transfer time (s)"
	p.Y.Label.Text = "P(x)"

	groups := groupByImplementation(metrics)
	for i, impl := range sortedImplementations(groups) {
		values := append([]float64(nil), groups[impl]...)
		sort.Float64s(values)
		var xys plotter.XYs
		for j, y := range yValsCDF(len(values)) {
			xys = append(xys, plotter.XY{X: values[j], Y: y})
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", impl, err)
		}
		c, err := implementationColor(cfg, impl)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = c
		l.LineStyle.Width = vg.Points(1)
		applyDashes(&l.LineStyle, i)
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("%s (median: %.2fs)", impl, median(values)), l)
	}

	fitAxis(&p.X, transferTimes(metrics))
	p.Y.Min = 0
	p.Y.Max = 1
	return p, nil
}
