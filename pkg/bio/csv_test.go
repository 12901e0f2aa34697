package bio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/grove"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const irisSample = `5.1,3.5,1.4,0.2,setosa
7.0,3.2,4.7,1.4,versicolor
6.3,3.3,6.0,2.5,virginica
4.9,3.0,1.4,0.2,setosa
`

func TestReadCSVObservations(t *testing.T) {
	obs, err := ReadCSVObservations(strings.NewReader(irisSample))
	require.NoError(t, err)
	assert.Equal(t, 4, obs.Count())
	assert.Equal(t, []int{0, 1, 2, 3}, obs.Features())
	assert.Equal(t, map[string]int{"setosa": 2, "versicolor": 1, "virginica": 1}, obs.Frequencies())
	assert.Equal(t, grove.NewObservation("versicolor", 7.0, 3.2, 4.7, 1.4), obs.Observations()[1])
}

func TestReadCSVObservationsEmpty(t *testing.T) {
	obs, err := ReadCSVObservations(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, obs.Count())
}

func TestReadCSVObservationsErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLine   int
		wantColumn int
	}{
		{"not a number", "1,2,A\n3,x,B\n", 2, 2},
		{"only a class", "A\n", 1, 0},
		{"ragged row", "1,2,A\n3,B\n", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSVObservations(strings.NewReader(tt.input))
			require.Error(t, err)
			var ife *InputFormatError
			require.True(t, errors.As(err, &ife), "got %v", err)
			assert.Equal(t, tt.wantLine, ife.Line)
			if tt.wantColumn != 0 {
				assert.Equal(t, tt.wantColumn, ife.Column)
			}
			assert.Contains(t, err.Error(), "line")
		})
	}
}

func TestReadCSVObservationsByRowStops(t *testing.T) {
	var lines []int
	err := ReadCSVObservationsByRow(strings.NewReader(irisSample), func(line int, _ grove.Observation) (bool, error) {
		lines = append(lines, line)
		return len(lines) < 2, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, lines)
}

func TestReadCSVObservationsFromFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iris.csv")
	require.NoError(t, os.WriteFile(path, []byte(irisSample), 0o600))
	obs, err := ReadCSVObservationsFromFilePath(path)
	require.NoError(t, err)
	assert.Equal(t, 4, obs.Count())

	_, err = ReadCSVObservationsFromFilePath(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestCSVWriterRoundTrip(t *testing.T) {
	obs, err := ReadCSVObservations(strings.NewReader(irisSample))
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	n, err := w.Write(obs.Observations())
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, w.Count())
	assert.Equal(t, "5.1,3.5,1.4,0.2,setosa\n", strings.SplitAfter(buf.String(), "\n")[0])

	again, err := ReadCSVObservations(&buf)
	require.NoError(t, err)
	assert.Equal(t, obs.Observations(), again.Observations())
}
