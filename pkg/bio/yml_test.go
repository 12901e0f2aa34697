package bio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadYMLExperiment(t *testing.T) {
	experiment, err := ReadYMLExperiment([]byte("seed: 42\nfolds: 5\nforestSizes: [1, 5, 10]\n"))
	require.NoError(t, err)
	require.NotNil(t, experiment.Seed)
	assert.Equal(t, int64(42), *experiment.Seed)
	assert.Equal(t, 5, experiment.Folds)
	assert.Equal(t, []int{1, 5, 10}, experiment.ForestSizes)
}

func TestReadYMLExperimentPartial(t *testing.T) {
	experiment, err := ReadYMLExperiment([]byte("folds: 3\n"))
	require.NoError(t, err)
	assert.Nil(t, experiment.Seed)
	assert.Equal(t, 3, experiment.Folds)
	assert.Empty(t, experiment.ForestSizes)
}

func TestReadYMLExperimentInvalid(t *testing.T) {
	for _, md := range []string{
		"folds: [1\n",
		"folds: -1\n",
		"forestSizes: [3, 0]\n",
		"trees: 4\n",
	} {
		_, err := ReadYMLExperiment([]byte(md))
		assert.Error(t, err, md)
	}
}

func TestReadYMLExperimentFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\n"), 0o600))
	experiment, err := ReadYMLExperimentFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), *experiment.Seed)

	_, err = ReadYMLExperimentFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
