// Package report turns extracted run metrics into PDF charts.
package report

import (
	"image/color"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vanyingenzi/udukoresho/pkg/figure"
	"github.com/vanyingenzi/udukoresho/pkg/logmetrics"
	"github.com/vanyingenzi/udukoresho/pkg/palette"
)

// Config carries everything a chart needs besides the data.
type Config struct {
	Style        figure.Style
	Dimensions   figure.Dimensions
	Registry     *palette.Registry
	MaxPathCount int
}

type seriesKey struct {
	Implementation string
	Paths          int
}

// groupByImplementation returns transfer times per implementation.
func groupByImplementation(metrics []logmetrics.Metrics) map[string][]float64 {
	groups := make(map[string][]float64)
	for _, m := range metrics {
		groups[m.Run.Implementation] = append(groups[m.Run.Implementation], m.TransferSeconds)
	}
	return groups
}

// groupBySeries returns transfer times per implementation and path count.
func groupBySeries(metrics []logmetrics.Metrics) map[seriesKey][]float64 {
	groups := make(map[seriesKey][]float64)
	for _, m := range metrics {
		k := seriesKey{m.Run.Implementation, m.Paths}
		groups[k] = append(groups[k], m.TransferSeconds)
	}
	return groups
}

func sortedImplementations(groups map[string][]float64) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSeries(groups map[seriesKey][]float64) []seriesKey {
	keys := make([]seriesKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Implementation != keys[j].Implementation {
			return keys[i].Implementation < keys[j].Implementation
		}
		return keys[i].Paths < keys[j].Paths
	})
	return keys
}

// Return the Y axis values for the CDF graph
func yValsCDF(length int) []float64 {
	if length == 1 {
		return []float64{1}
	}
	toReturn := make([]float64, 0, length)
	for i := 0; i < length; i++ {
		toReturn = append(toReturn, float64(i)/float64(length-1))
	}
	return toReturn
}

// median expects sorted values.
func median(sorted []float64) float64 {
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

func transferTimes(metrics []logmetrics.Metrics) []float64 {
	values := make([]float64, 0, len(metrics))
	for _, m := range metrics {
		values = append(values, m.TransferSeconds)
	}
	return values
}

// fitAxis sets min to 0 (or the smallest negative value) and leaves 5% head room.
func fitAxis(axis *plot.Axis, values []float64) {
	if len(values) == 0 {
		return
	}
	axis.Min = floats.Min(append([]float64{0}, values...))
	hi := floats.Max(values)
	if hi <= axis.Min {
		hi = axis.Min + 1
	}
	axis.Max = hi + (hi-axis.Min)*0.05
}

// seriesColor is the colour of implementation for a given path count.
func seriesColor(cfg Config, implementation string, paths int) (color.Color, error) {
	c, err := cfg.Registry.Encode(implementation, paths, cfg.MaxPathCount)
	if err != nil {
		return nil, err
	}
	return c.Color(), nil
}

// implementationColor is the full-brightness colour of implementation.
func implementationColor(cfg Config, implementation string) (color.Color, error) {
	return seriesColor(cfg, implementation, cfg.MaxPathCount)
}

func dashes(i int) ([]vg.Length, vg.Length) {
	ls := palette.DashPattern(i)
	d := make([]vg.Length, len(ls.Dashes))
	for j, v := range ls.Dashes {
		d[j] = vg.Points(v)
	}
	return d, vg.Points(ls.Offset)
}

func applyDashes(style *draw.LineStyle, i int) {
	style.Dashes, style.DashOffs = dashes(i)
}
