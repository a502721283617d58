package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanyingenzi/udukoresho/pkg/figure"
	"github.com/vanyingenzi/udukoresho/pkg/logmetrics"
	"github.com/vanyingenzi/udukoresho/pkg/palette"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(writeSettings(t, `
exec_dir: /data/run-1
experiments:
  - implementation: mpquic
    server_log: mpquic/server.log
    time_file: /abs/time.json
`))
	require.NoError(t, err)

	assert.Equal(t, figure.DefaultSettings(), s.Figure())
	assert.Equal(t, palette.DefaultMaxPathCount, s.MaxPathCount)
	assert.Equal(t, "/data/run-1/plots", s.OutputDir())
	assert.Equal(t, []logmetrics.Run{{
		Implementation: "mpquic",
		ServerLog:      "/data/run-1/mpquic/server.log",
		TimeFile:       "/abs/time.json",
	}}, s.Runs())
	assert.Equal(t, figure.ComputeDimensions(252, figure.Options{}), s.Dimensions())
}

func TestLoadOverrides(t *testing.T) {
	s, err := Load(writeSettings(t, `
exec_dir: out
plot_dir: /tmp/figs
font_size: 8
line_width: 516
width: 7
max_path_count: 8
colors:
  mpquic: "#000000"
  picoquic: "#FF0000"
experiments:
  - implementation: picoquic
    server_log: s.log
    time_file: t.json
`))
	require.NoError(t, err)

	assert.Equal(t, figure.Settings{FontSize: 8, LineWidth: 516}, s.Figure())
	assert.Equal(t, 8, s.MaxPathCount)
	assert.Equal(t, "/tmp/figs", s.OutputDir())

	d := s.Dimensions()
	assert.Equal(t, 7.0, d.Width)
	assert.InDelta(t, 516/figure.PointsPerInch*figure.GoldenRatio, d.Height, 1e-9)

	reg, err := s.Registry()
	require.NoError(t, err)
	assert.Equal(t, "#000000", reg.ResolveBaseColor("mpquic"))
	assert.Equal(t, "#FF0000", reg.ResolveBaseColor("picoquic"))
	assert.Equal(t, "#56B4E9", reg.ResolveBaseColor("mcmpquic"))
}

func TestLoadRejectsBadColor(t *testing.T) {
	s, err := Load(writeSettings(t, `
colors:
  mpquic: "#12"
experiments:
  - {implementation: mpquic, server_log: a, time_file: b}
`))
	require.NoError(t, err)
	_, err = s.Registry()
	assert.ErrorIs(t, err, palette.ErrFormat)
}

func TestLoadErrors(t *testing.T) {
	for name, content := range map[string]string{
		"no experiments":   `exec_dir: x`,
		"unknown key":      "exec_dirr: x\nexperiments: [{implementation: a, server_log: b, time_file: c}]",
		"missing log":      `experiments: [{implementation: a, time_file: c}]`,
		"negative max":     "max_path_count: -1\nexperiments: [{implementation: a, server_log: b, time_file: c}]",
		"not yaml mapping": `- 1`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeSettings(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
