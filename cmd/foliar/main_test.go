package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestEnumerate(t *testing.T) {
	out, _, err := run(t, "enumerate", "cPcbbbiht", "--backend", "gini")
	require.NoError(t, err)
	var got struct {
		Isosig       string  `yaml:"isosig"`
		Orientations [][]int `yaml:"orientations"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "cPcbbbiht", got.Isosig)
	assert.ElementsMatch(t, [][]int{{1, 1}, {1, -1}}, got.Orientations)
}

func TestAnalyze(t *testing.T) {
	out, _, err := run(t, "analyze", "dLQbcccdero")
	require.NoError(t, err)
	var got struct {
		Taut []struct {
			Kind    string `yaml:"kind"`
			Sutures int    `yaml:"sutures"`
			Slope   struct {
				M, L int64
			} `yaml:"slope"`
		} `yaml:"taut"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Taut, 2)
	for _, o := range got.Taut {
		assert.Equal(t, "ideal", o.Kind)
		assert.Equal(t, 2, o.Sutures)
		assert.Equal(t, int64(1), o.Slope.M)
		assert.Equal(t, int64(0), o.Slope.L)
	}
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "stats", "jLLvQPQcdfhghigiihshhgfifme")
	require.NoError(t, err)
	var got struct {
		Applicable   bool `yaml:"applicable"`
		Orientations int  `yaml:"orientations"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.True(t, got.Applicable)
	assert.Equal(t, 8, got.Orientations)
}

func TestSearch_Metrics(t *testing.T) {
	out, errOut, err := run(t, "search", "--metrics",
		"jLvMLQQbfefgihhiixiptvvvgof", "jLLvQPQcdfhghigiihshhgfifme")
	require.NoError(t, err)
	var got struct {
		Found  bool   `yaml:"found"`
		Isosig string `yaml:"isosig"`
		Index  int    `yaml:"index"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.True(t, got.Found)
	assert.Equal(t, "jLLvQPQcdfhghigiihshhgfifme", got.Isosig)
	assert.Equal(t, 1, got.Index)
	assert.Contains(t, errOut, `foliar_triangulations_analyzed_total{outcome="taut"} 1`)
	assert.Contains(t, errOut, "foliar_taut_orientations_total 1")
}

func TestBatch_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foliar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  workers: 2\n  max_orientations: 1\n"), 0o600))

	out, _, err := run(t, "batch", "--config", path, "jLLvQPQcdfhghigiihshhgfifme", "cPc*bbiht")
	require.NoError(t, err)
	var got []struct {
		Isosig       string `yaml:"isosig"`
		Orientations int    `yaml:"orientations"`
		Error        string `yaml:"error"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Orientations)
	assert.Empty(t, got[0].Error)
	assert.NotEmpty(t, got[1].Error)
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "enumerate", "cPc*bbiht")
	assert.Error(t, err)
	_, _, err = run(t, "enumerate", "cPcbbbiht", "--backend", "minisat")
	assert.Error(t, err)
	_, _, err = run(t, "analyze")
	assert.Error(t, err)
	_, _, err = run(t, "stats", "cPcbbbiht", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
