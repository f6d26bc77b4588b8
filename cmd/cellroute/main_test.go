package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cellroute/config"
	"github.com/katalvlaran/cellroute/report"
)

func TestExecute_Greedy(t *testing.T) {
	var out, logs bytes.Buffer
	err := execute([]string{"greedy", "-x", "2", "-y", "2", "-budget", "100"}, &out, &logs)
	require.NoError(t, err)

	require.Contains(t, out.String(), "Nearest neighbour, uniform reward")
	require.Contains(t, out.String(), "(0,0) -> (0,1) -> (1,1) -> (1,0) -> (0,0)")
	require.Contains(t, logs.String(), "tour planned")
}

func TestExecute_PlanConfiguredOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.yaml")
	body := "grid:\n  x: 2\n  y: 2\nplan:\n  algorithms: [greedy, search]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	var out bytes.Buffer
	require.NoError(t, execute([]string{"plan", "-config", path}, &out, io.Discard))
	greedyAt := strings.Index(out.String(), "Nearest neighbour")
	searchAt := strings.Index(out.String(), "Brute force")
	require.GreaterOrEqual(t, greedyAt, 0)
	require.Greater(t, searchAt, greedyAt)
}

func TestExecute_PlanYAML(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"plan", "-x", "2", "-y", "3", "-candidates", "20", "-format", "yaml"}, &out, io.Discard)
	require.NoError(t, err)

	dec := yaml.NewDecoder(strings.NewReader(out.String()))
	var titles []string
	for {
		var s report.Summary
		if err := dec.Decode(&s); err != nil {
			require.True(t, errors.Is(err, io.EOF), "decode: %v", err)
			break
		}
		titles = append(titles, s.Title)
		require.NotEmpty(t, s.Tour)
		require.LessOrEqual(t, s.TotalTime, 200.0)
	}
	require.Len(t, titles, 2)
	require.True(t, strings.HasPrefix(titles[0], "Brute force"))
	require.True(t, strings.HasPrefix(titles[1], "Nearest neighbour"))
}

func TestExecute_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	body := "grid:\n  x: 2\n  y: 2\n  rewards: random\n  seed: 5\nplan:\n  algorithms: [search]\n  max_candidates: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	var out bytes.Buffer
	require.NoError(t, execute([]string{"plan", "-config", path}, &out, io.Discard))
	require.Contains(t, out.String(), "Brute force, random reward")
	require.NotContains(t, out.String(), "Nearest neighbour")
	require.Contains(t, out.String(), "candidates:")
}

func TestExecute_Grid(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"grid", "-x", "3", "-y", "2"}, &out, io.Discard))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
}

func TestExecute_InvalidInput(t *testing.T) {
	var out, logs bytes.Buffer
	err := execute([]string{"greedy", "-budget", "-5"}, &out, &logs)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.Empty(t, out.String(), "no tour on invalid input")
	require.Contains(t, logs.String(), "cellroute failed")

	err = execute([]string{"search", "-format", "xml"}, &out, io.Discard)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
