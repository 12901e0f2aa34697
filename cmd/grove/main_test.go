package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/grove/pkg/bio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeparableCSV(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < 30; i++ {
		class := "low"
		if i >= 15 {
			class = "high"
		}
		fmt.Fprintf(&b, "%d,%d,%s\n", i, (i*7)%5, class)
	}
	path := filepath.Join(t.TempDir(), "observations.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := cliParser()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersionCmd(t *testing.T) {
	assert.Equal(t, "grove v0.1.0\n", execute(t, "version"))
}

func TestGrowCmd(t *testing.T) {
	input := writeSeparableCSV(t)
	out := execute(t, "grow", "-i", input, "-n", "3", "--seed", "1")
	var forest struct {
		Trees []json.RawMessage `json:"trees"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &forest))
	assert.Len(t, forest.Trees, 3)

	output := filepath.Join(t.TempDir(), "forest.txt")
	execute(t, "grow", "-i", input, "-n", "2", "--seed", "1", "--format", "text", "-o", output)
	b, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[tree 1]")
}

func TestTestCmd(t *testing.T) {
	input := writeSeparableCSV(t)
	testPath := filepath.Join(t.TempDir(), "test.csv")
	require.NoError(t, os.WriteFile(testPath, []byte("2,1,low\n27,3,high\n"), 0o600))
	out := execute(t, "test", "-i", input, "-t", testPath, "-n", "3", "--seed", "5")
	assert.Equal(t, "1.000000 success rate, failed to make a prediction for 0 observations\n", out)
}

func TestCrossvalCmd(t *testing.T) {
	input := writeSeparableCSV(t)
	experiment := filepath.Join(t.TempDir(), "experiment.yml")
	require.NoError(t, os.WriteFile(experiment, []byte("seed: 3\nfolds: 3\nforestSizes: [1, 2]\n"), 0o600))
	out := execute(t, "crossval", "-i", input, "-e", experiment)
	assert.Contains(t, out, "30 observations, 3 folds, seed 3")
	assert.Contains(t, out, "fold 3")
	assert.NotContains(t, out, "fold 4")

	out = execute(t, "crossval", "-i", input, "-e", experiment, "-k", "2")
	assert.Contains(t, out, "2 folds")
}

func TestDescribeCmd(t *testing.T) {
	out := execute(t, "describe", "-i", writeSeparableCSV(t))
	assert.Contains(t, out, "Observations: N=30")
	assert.Contains(t, out, "Best split: ")
}

func TestSetCmdToSQLite3AndBack(t *testing.T) {
	input := writeSeparableCSV(t)
	dir := t.TempDir()
	db := filepath.Join(dir, "observations.db")
	execute(t, "set", "-i", input, "-o", db)

	output := filepath.Join(dir, "copy.csv")
	execute(t, "set", "-i", db, "-o", output)
	original, err := bio.ReadCSVObservationsFromFilePath(input)
	require.NoError(t, err)
	copied, err := bio.ReadCSVObservationsFromFilePath(output)
	require.NoError(t, err)
	assert.Equal(t, original.Observations(), copied.Observations())
}

func TestSplitCmd(t *testing.T) {
	input := writeSeparableCSV(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "train.csv")
	split := filepath.Join(dir, "test.csv")
	execute(t, "set", "split", "-i", input, "-o", output, "-s", split, "-p", "50", "--seed", "2")
	train, err := bio.ReadCSVObservationsFromFilePath(output)
	require.NoError(t, err)
	test, err := bio.ReadCSVObservationsFromFilePath(split)
	require.NoError(t, err)
	assert.Equal(t, 30, train.Count()+test.Count())
}
