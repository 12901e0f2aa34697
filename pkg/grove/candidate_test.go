package grove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatesBestForPureSplit(t *testing.T) {
	best := NewCandidates(fourObservations()).BestFor([]int{0})
	require.NotNil(t, best)
	assert.Equal(t, Classifier{Feature: 0, Threshold: 2.0}, best.Classifier)
	assert.Equal(t, 0.0, best.Score())
	assert.True(t, best.Splits())
	assert.Equal(t, map[string]int{"A": 2}, best.Partition[LessOrEqual].Frequencies())
	assert.Equal(t, map[string]int{"B": 2}, best.Partition[GreaterThan].Frequencies())
}

func TestCandidatesBestForWithoutFeatures(t *testing.T) {
	assert.Nil(t, NewCandidates(fourObservations()).BestFor(nil))
	assert.Nil(t, NewCandidates(NewObservations(nil)).BestFor([]int{0}))
}

func TestCandidatesBestForHasLowestScore(t *testing.T) {
	obs := NewObservations([]Observation{
		NewObservation("A", 1, 5),
		NewObservation("B", 2, 1),
		NewObservation("A", 3, 4),
		NewObservation("B", 4, 2),
		NewObservation("A", 5, 6),
	})
	features := obs.Features()
	best := NewCandidates(obs).BestFor(features)
	require.NotNil(t, best)
	for _, c := range obs.ClassifiersFor(features) {
		assert.LessOrEqual(t, best.Score(), NewCandidate(c, obs).Score()+1e-12)
	}
	assert.Equal(t, 0.0, best.Score())
}

func TestCandidateScore(t *testing.T) {
	obs := fourObservations()
	// ≤ 1.0 holds {A}, > 1.0 holds {A, B, B}
	c := NewCandidate(Classifier{Feature: 0, Threshold: 1.0}, obs)
	assert.InDelta(t, 0.75*(1.0-(1.0/9.0+4.0/9.0)), c.Score(), 1e-9)

	// nothing is over 4.0: no split at all
	c = NewCandidate(Classifier{Feature: 0, Threshold: 4.0}, obs)
	assert.False(t, c.Splits())
	assert.InDelta(t, 0.5, c.Score(), 1e-9)
}
