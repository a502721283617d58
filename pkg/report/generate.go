package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"k8s.io/klog/v2"

	"github.com/vanyingenzi/udukoresho/pkg/figure"
	"github.com/vanyingenzi/udukoresho/pkg/logmetrics"
)

const (
	ScatterFile = "transferTime.pdf"
	CDFFile     = "transferTimeCDF.pdf"
	BoxPlotFile = "transferTimeBoxPlot.pdf"
	SummaryFile = "summary.pdf"
	PerImplFile = "transferTimeByImplementation.pdf"
)

type chart struct {
	file string
	make func(Config, []logmetrics.Metrics) (*plot.Plot, error)
}

var charts = []chart{
	{ScatterFile, TransferTimeScatter},
	{CDFFile, TransferTimeCDF},
	{BoxPlotFile, TransferTimeBoxPlot},
}

// Generate writes every chart to outDir, plus a summary page with the
// charts side by side and a scatter per implementation, one per page.
func Generate(cfg Config, metrics []logmetrics.Metrics, outDir string) error {
	if len(metrics) == 0 {
		return fmt.Errorf("report: no runs to plot")
	}
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return err
	}

	row := make([]*plot.Plot, 0, len(charts))
	for _, c := range charts {
		p, err := c.make(cfg, metrics)
		if err != nil {
			return fmt.Errorf("%s: %w", c.file, err)
		}
		out := filepath.Join(outDir, c.file)
		if err := figure.Save(p, cfg.Dimensions, out); err != nil {
			return fmt.Errorf("saving %s: %w", out, err)
		}
		klog.Infof("Saved %s", out)
		row = append(row, p)
	}

	out := filepath.Join(outDir, SummaryFile)
	if err := figure.SaveTiled([][]*plot.Plot{row}, cfg.Dimensions, out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	klog.Infof("Saved %s", out)

	pages, err := perImplementation(cfg, metrics)
	if err != nil {
		return err
	}
	out = filepath.Join(outDir, PerImplFile)
	if err := figure.SavePages(pages, cfg.Dimensions, out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	klog.Infof("Saved %s", out)
	return nil
}

func perImplementation(cfg Config, metrics []logmetrics.Metrics) ([]*plot.Plot, error) {
	byImpl := make(map[string][]logmetrics.Metrics)
	for _, m := range metrics {
		byImpl[m.Run.Implementation] = append(byImpl[m.Run.Implementation], m)
	}
	pages := make([]*plot.Plot, 0, len(byImpl))
	for _, impl := range cfg.Registry.Labels() {
		if runs, ok := byImpl[impl]; ok {
			p, err := implementationPage(cfg, impl, runs)
			if err != nil {
				return nil, err
			}
			pages = append(pages, p)
			delete(byImpl, impl)
		}
	}
	// Unregistered implementations are still plotted, after the known ones.
	rest := make([]string, 0, len(byImpl))
	for impl := range byImpl {
		rest = append(rest, impl)
	}
	sort.Strings(rest)
	for _, impl := range rest {
		p, err := implementationPage(cfg, impl, byImpl[impl])
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

func implementationPage(cfg Config, impl string, runs []logmetrics.Metrics) (*plot.Plot, error) {
	p, err := TransferTimeScatter(cfg, runs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", impl, err)
	}
	p.Title.Text = impl
	return p, nil
}

