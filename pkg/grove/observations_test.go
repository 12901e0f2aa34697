package grove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourObservations() *Observations {
	return NewObservations([]Observation{
		NewObservation("A", 1.0),
		NewObservation("A", 2.0),
		NewObservation("B", 3.0),
		NewObservation("B", 4.0),
	})
}

func TestObservationsAddKeepsFrequencies(t *testing.T) {
	obs := NewObservations(nil)
	assert.Equal(t, 0, obs.Count())

	obs.Add(NewObservation("A", 1, 2))
	obs.Add(NewObservation("B", 3, 4))
	obs.Add(NewObservation("A", 5, 6))

	assert.Equal(t, 3, obs.Count())
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, obs.Frequencies())
	assert.Equal(t, []string{"A", "B"}, obs.Classes())

	var total int
	for _, c := range obs.Frequencies() {
		total += c
	}
	assert.Equal(t, obs.Count(), total)
}

func TestObservationsZeroValueIsUsable(t *testing.T) {
	var obs Observations
	obs.Add(NewObservation("A", 1))
	mode, ok := obs.Mode()
	require.True(t, ok)
	assert.Equal(t, "A", mode)
}

func TestObservationsMode(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		mode, ok := NewObservations(nil).Mode()
		assert.False(t, ok)
		assert.Empty(t, mode)
	})
	t.Run("majority", func(t *testing.T) {
		obs := NewObservations([]Observation{
			NewObservation("B"), NewObservation("A"), NewObservation("A"),
		})
		mode, ok := obs.Mode()
		require.True(t, ok)
		assert.Equal(t, "A", mode)
	})
	t.Run("tie returns a joint maximizer", func(t *testing.T) {
		obs := fourObservations()
		mode, ok := obs.Mode()
		require.True(t, ok)
		freqs := obs.Frequencies()
		for _, c := range freqs {
			assert.GreaterOrEqual(t, freqs[mode], c)
		}
	})
}

func TestObservationsGiniImpurity(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    float64
	}{
		{"empty", nil, 0.0},
		{"pure", []string{"A", "A", "A"}, 0.0},
		{"even split", []string{"A", "B"}, 0.5},
		{"three even classes", []string{"A", "B", "C"}, 1.0 - 1.0/3.0},
		{"three to one", []string{"A", "A", "A", "B"}, 0.375},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := NewObservations(nil)
			for _, c := range tt.classes {
				obs.Add(NewObservation(c, 0))
			}
			assert.InDelta(t, tt.want, obs.GiniImpurity(), 1e-9)
		})
	}
}

func TestObservationsGiniImpurityBounds(t *testing.T) {
	obs := NewObservations(nil)
	classes := []string{"A", "B", "C", "A", "B", "A", "D"}
	for i, c := range classes {
		obs.Add(NewObservation(c, float64(i)))
		gini := obs.GiniImpurity()
		k := float64(len(obs.Classes()))
		assert.GreaterOrEqual(t, gini, 0.0)
		assert.LessOrEqual(t, gini, 1.0-1.0/k+1e-9)
		if len(obs.Classes()) == 1 {
			assert.Equal(t, 0.0, gini)
		} else {
			assert.Greater(t, gini, 0.0)
		}
	}
}

func TestObservationsFeatures(t *testing.T) {
	assert.Empty(t, NewObservations(nil).Features())
	obs := NewObservations([]Observation{NewObservation("A", 1, 2, 3)})
	assert.Equal(t, []int{0, 1, 2}, obs.Features())
}

func TestObservationsPartition(t *testing.T) {
	obs := fourObservations()

	groups := obs.Partition(Classifier{Feature: 0, Threshold: 2.0})
	require.Len(t, groups, 2)
	assert.Equal(t, map[string]int{"A": 2}, groups[LessOrEqual].Frequencies())
	assert.Equal(t, map[string]int{"B": 2}, groups[GreaterThan].Frequencies())

	groups = obs.Partition(Classifier{Feature: 0, Threshold: 4.0})
	require.Len(t, groups, 1)
	assert.Equal(t, 4, groups[LessOrEqual].Count())

	assert.Empty(t, NewObservations(nil).Partition(Classifier{}))
}

func TestObservationsPartitionIsDisjointAndComplete(t *testing.T) {
	obs := NewObservations([]Observation{
		NewObservation("A", 1, 9),
		NewObservation("B", 5, 3),
		NewObservation("A", 2, 2),
		NewObservation("C", 7, 7),
		NewObservation("B", 5, 1),
	})
	for _, c := range obs.ClassifiersFor(obs.Features()) {
		groups := obs.Partition(c)
		var total int
		for b, group := range groups {
			total += group.Count()
			for _, o := range group.Observations() {
				assert.Equal(t, b, c.Classify(o))
			}
		}
		assert.Equal(t, obs.Count(), total)
	}
}

func TestObservationsPartitionDoesNotAlias(t *testing.T) {
	obs := fourObservations()
	groups := obs.Partition(Classifier{Feature: 0, Threshold: 2.0})
	groups[LessOrEqual].Add(NewObservation("C", 0))
	assert.Equal(t, 4, obs.Count())
	assert.NotContains(t, obs.Frequencies(), "C")
}

func TestObservationsClassifiersFor(t *testing.T) {
	obs := NewObservations([]Observation{
		NewObservation("A", 1, 10),
		NewObservation("B", 2, 20),
	})
	assert.Equal(t, []Classifier{
		{Feature: 1, Threshold: 10},
		{Feature: 1, Threshold: 20},
		{Feature: 0, Threshold: 1},
		{Feature: 0, Threshold: 2},
	}, obs.ClassifiersFor([]int{1, 0}))
	assert.Empty(t, obs.ClassifiersFor(nil))
}

func TestObservationsString(t *testing.T) {
	assert.Equal(t, "Observations: N=4, mode=A, impurity=0.500000, features=1", fourObservations().String())
}

func TestClassifierClassify(t *testing.T) {
	c := Classifier{Feature: 1, Threshold: 2.5}
	assert.Equal(t, GreaterThan, c.Classify(NewObservation("A", 0, 3)))
	assert.Equal(t, LessOrEqual, c.Classify(NewObservation("A", 9, 2.5)))
	assert.Panics(t, func() { c.Classify(NewObservation("A", 1)) })
}

func TestBranchString(t *testing.T) {
	assert.Equal(t, "≤", LessOrEqual.String())
	assert.Equal(t, ">", GreaterThan.String())
}
