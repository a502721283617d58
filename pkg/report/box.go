package report

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"k8s.io/klog/v2"

	"github.com/vanyingenzi/udukoresho/pkg/figure"
	"github.com/vanyingenzi/udukoresho/pkg/logmetrics"
)

const boxWidth = 12 // in pt

// TransferTimeBoxPlot draws one box of transfer times per implementation
// and path count, filled with that series' colour.
func TransferTimeBoxPlot(cfg Config, metrics []logmetrics.Metrics) (*plot.Plot, error) {
	klog.V(2).Infof("Plotting transfer time box plot for %d runs", len(metrics))
	p, err := figure.New(cfg.Style)
	if err != nil {
		return nil, err
	}
	p.X.Label.Text = "Implementation / paths"
	p.Y.Label.Text = "Transfer time (s)"

	groups := groupBySeries(metrics)
	var nominals []string
	for position, k := range sortedSeries(groups) {
		values := plotter.Values(append([]float64(nil), groups[k]...))
		sort.Float64s(values)
		box, err := plotter.NewBoxPlot(vg.Points(boxWidth), float64(position), values)
		if err != nil {
			return nil, fmt.Errorf("%s with %d paths: %w", k.Implementation, k.Paths, err)
		}
		c, err := seriesColor(cfg, k.Implementation, k.Paths)
		if err != nil {
			return nil, err
		}
		box.FillColor = c
		p.Add(box)
		nominals = append(nominals, k.Implementation+" "+strconv.Itoa(k.Paths))
	}
	if len(nominals) == 0 {
		return nil, fmt.Errorf("report: no runs to plot")
	}
	p.NominalX(nominals...)
	fitAxis(&p.Y, transferTimes(metrics))
	return p, nil
}
