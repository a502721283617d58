package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanyingenzi/udukoresho/pkg/figure"
	"github.com/vanyingenzi/udukoresho/pkg/logmetrics"
	"github.com/vanyingenzi/udukoresho/pkg/palette"
)

func testConfig() Config {
	return Config{
		Style:        figure.Setup(figure.DefaultSettings()),
		Dimensions:   figure.ComputeDimensions(252, figure.Options{}),
		Registry:     palette.DefaultRegistry(),
		MaxPathCount: palette.DefaultMaxPathCount,
	}
}

func metric(impl string, paths int, secs float64) logmetrics.Metrics {
	return logmetrics.Metrics{
		Run:             logmetrics.Run{Implementation: impl},
		Paths:           paths,
		TransferSeconds: secs,
	}
}

var sample = []logmetrics.Metrics{
	metric("mpquic", 2, 5),
	metric("mpquic", 2, 6),
	metric("mpquic", 4, 3),
	metric("mcmpquic", 4, 2),
	metric("mcmpquic", 8, 1),
	metric("mcmpquic-rfs", 8, 1.5),
	metric("picoquic", 1, 9),
}

func TestYValsCDF(t *testing.T) {
	if diff := cmp.Diff([]float64{0, 0.25, 0.5, 0.75, 1}, yValsCDF(5)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1}, yValsCDF(1)); diff != "" {
		t.Errorf("single value mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedSeries(t *testing.T) {
	want := []seriesKey{
		{"mcmpquic", 4}, {"mcmpquic", 8}, {"mcmpquic-rfs", 8},
		{"mpquic", 2}, {"mpquic", 4}, {"picoquic", 1},
	}
	if diff := cmp.Diff(want, sortedSeries(groupBySeries(sample))); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, median([]float64{1, 2, 3}))
}

func TestDashesUsePalette(t *testing.T) {
	d, offs := dashes(1)
	require.Len(t, d, 2)
	assert.Equal(t, 10.0, float64(d[0]))
	assert.Equal(t, 5.0, float64(offs))
}

func TestSeriesColorFollowsPathCount(t *testing.T) {
	cfg := testConfig()
	dark, err := seriesColor(cfg, "mpquic", 2)
	require.NoError(t, err)
	bright, err := seriesColor(cfg, "mpquic", 16)
	require.NoError(t, err)
	dr, _, _, _ := dark.RGBA()
	br, _, _, _ := bright.RGBA()
	assert.Less(t, dr, br)
}

func TestCharts(t *testing.T) {
	cfg := testConfig()

	scatter, err := TransferTimeScatter(cfg, sample)
	require.NoError(t, err)
	assert.Equal(t, 0.0, scatter.X.Min)
	assert.Equal(t, 9.0, scatter.X.Max)
	assert.Equal(t, 0.0, scatter.Y.Min)
	assert.InDelta(t, 9.45, scatter.Y.Max, 1e-9)

	cdf, err := TransferTimeCDF(cfg, sample)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cdf.Y.Max)

	_, err = TransferTimeBoxPlot(cfg, sample)
	require.NoError(t, err)

	_, err = TransferTimeBoxPlot(cfg, nil)
	assert.Error(t, err)
}

func TestScatterRejectsBadMaximum(t *testing.T) {
	cfg := testConfig()
	cfg.MaxPathCount = 0
	_, err := TransferTimeScatter(cfg, sample)
	assert.ErrorIs(t, err, palette.ErrFormat)
}

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plots")
	require.NoError(t, Generate(testConfig(), sample, out))
	for _, name := range []string{ScatterFile, CDFFile, BoxPlotFile, SummaryFile, PerImplFile} {
		info, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.NotZero(t, info.Size(), name)
	}
}

func TestGenerateWithoutRuns(t *testing.T) {
	assert.Error(t, Generate(testConfig(), nil, t.TempDir()))
}

func TestPerImplementationOrder(t *testing.T) {
	pages, err := perImplementation(testConfig(), sample)
	require.NoError(t, err)
	var titles []string
	for _, p := range pages {
		titles = append(titles, p.Title.Text)
	}
	assert.Equal(t, []string{"mcmpquic", "mcmpquic-rfs", "mpquic", "picoquic"}, titles)
}
