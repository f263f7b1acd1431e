package cli

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodzone/floodgrid"
	"github.com/katalvlaran/floodzone/internal/app"
	"github.com/katalvlaran/floodzone/internal/config"
	"github.com/katalvlaran/floodzone/render"
	"github.com/katalvlaran/floodzone/zones"
)

const manualGrid = `3 3
1 1 0
0 0 0
0 1 1
10 20 30
40 50 60
70 80 90
`

// execute runs the command tree with stdout and stderr captured together.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "floodzone", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["analyze"])
	assert.True(t, names["version"])
}

func TestVersion_IgnoresConfig(t *testing.T) {
	out, err := execute(t, "", "version", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "floodzone dev (commit: unknown, built: unknown)\n", out)
}

func TestAnalyze_StdinToDir(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, manualGrid, "analyze", "--input", "-", "--out-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Flood Zones Detected: 2")

	zoneMap, err := os.ReadFile(filepath.Join(dir, "zone_map.txt"))
	require.NoError(t, err)
	assert.Equal(t, "3 3\n0 0 -1 \n-1 -1 -1 \n-1 7 7 \n", string(zoneMap))

	elevation, err := os.ReadFile(filepath.Join(dir, "elevation_map.txt"))
	require.NoError(t, err)
	assert.Equal(t, "3 3\n10 20 30 \n40 50 60 \n70 80 90 \n", string(elevation))
}

func TestAnalyze_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte(manualGrid), 0o644))

	out, err := execute(t, "", "analyze", "--input", path, "--no-export")
	require.NoError(t, err)
	assert.Contains(t, out, "Flood Map (# = Flooded, . = Safe):")
	assert.Contains(t, out, "Total Flood Zones Detected: 2")
}

func TestAnalyze_RandomMatchesLibrary(t *testing.T) {
	out, err := execute(t, "", "analyze", "--rows", "4", "--cols", "5", "--seed", "3", "--no-export")
	require.NoError(t, err)

	g, err := floodgrid.Random(4, 5, floodgrid.WithSeed(3))
	require.NoError(t, err)
	res, err := zones.Detect(g)
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, render.Report(&want, g, res))

	assert.Equal(t, want.String(), out)

	again, err := execute(t, "", "analyze", "--random", "--rows", "4", "--cols", "5", "--seed", "3", "--no-export")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestAnalyze_ConfigFileAndEnv(t *testing.T) {
	want, err := execute(t, "", "analyze", "--rows", "2", "--cols", "3", "--seed", "9", "--no-export")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "floodzone.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  rows: 2\n  cols: 3\n  seed: 9\nexport:\n  enabled: false\n"), 0o644))
	got, err := execute(t, "", "analyze", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	t.Setenv("FLOODZONE_GRID_ROWS", "2")
	t.Setenv("FLOODZONE_GRID_COLS", "3")
	t.Setenv("FLOODZONE_GRID_SEED", "9")
	t.Setenv("FLOODZONE_EXPORT_ENABLED", "false")
	got, err = execute(t, "", "analyze")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAnalyze_QuietWithMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.prom")
	out, err := execute(t, "", "analyze", "--rows", "4", "--cols", "5", "--seed", "7",
		"--no-export", "--quiet", "--metrics-out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	text, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(text), `floodzone_analyses_total{source="random",status="ok"} 1`)
	assert.Contains(t, string(text), "floodzone_grid_cells 20")
}

func TestAnalyze_FailureStillWritesMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.prom")
	_, err := execute(t, "2 2 1", "analyze", "--input", "-", "--no-export", "--metrics-out", path)
	require.ErrorIs(t, err, floodgrid.ErrMalformedInput)

	text, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(text), `floodzone_analyses_total{source="stdin",status="failed"} 1`)
}

func TestAnalyze_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  error
	}{
		{name: "BadProbability", args: []string{"analyze", "--flood-probability", "1.5", "--no-export"}, want: config.ErrInvalidConfig},
		{name: "OversizedRandom", args: []string{"analyze", "--rows", "200000", "--cols", "200000", "--no-export"}, want: config.ErrInvalidConfig},
		{name: "OversizedHeader", stdin: "3 3000000000000000000 1 0 1", args: []string{"analyze", "--input", "-", "--no-export"}, want: app.ErrGridTooLarge},
		{name: "NegativeRows", args: []string{"analyze", "--rows", "-1", "--no-export"}, want: config.ErrInvalidConfig},
		{name: "BadLogLevel", args: []string{"analyze", "--no-export", "--log-level", "loud"}, want: config.ErrInvalidConfig},
		{name: "MissingInput", args: []string{"analyze", "--input", missing, "--no-export"}, want: fs.ErrNotExist},
		{name: "MalformedStdin", stdin: "1 2 0 3 4 5", args: []string{"analyze", "--input", "-", "--no-export"}, want: floodgrid.ErrInvalidCell},
		{name: "InputAndRandom", args: []string{"analyze", "--input", "-", "--random"}},
		{name: "ExtraArgs", args: []string{"analyze", "grid.txt"}},
		{name: "MissingConfig", args: []string{"analyze", "--config", missing}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.stdin, tc.args...)
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}
