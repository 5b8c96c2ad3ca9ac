package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foliar/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foliar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "gophersat", cfg.Solver.Backend)
	assert.Equal(t, 4, cfg.Search.Workers)
	assert.Equal(t, "info", cfg.Log.Level)

	got, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
solver:
  backend: gini
search:
  workers: 2
  max_orientations: 100
log:
  level: debug
metrics:
  enabled: true
`)
	got, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.Solver.Backend = "gini"
	want.Search.Workers = 2
	want.Search.MaxOrientations = 100
	want.Log.Level = "debug"
	want.Metrics.Enabled = true
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Empty(t *testing.T) {
	got, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown backend":    "solver:\n  backend: minisat\n",
		"zero workers":       "search:\n  workers: 0\n",
		"negative limit":     "search:\n  max_orientations: -1\n",
		"negative manifolds": "search:\n  max_triangulations: -2\n",
		"bad level":          "log:\n  level: loud\n",
		"unknown key":        "solver:\n  threads: 3\n",
		"not yaml":           "solver: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			assert.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
