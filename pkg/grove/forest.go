package grove

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

/*
Forest represents an ensemble of independently grown trees that
predicts the class most of its trees predict.
*/
type Forest struct {
	Trees []*Tree `json:"trees"`
}

// Add appends a tree to the forest.
func (f *Forest) Add(t *Tree) {
	f.Trees = append(f.Trees, t)
}

// Size returns the number of trees in the forest.
func (f *Forest) Size() int {
	return len(f.Trees)
}

/*
Predict takes an observation and returns the class predicted by most
trees of the forest. Ties resolve to the tied class predicted first.
It returns an error if any of the trees fails to make a prediction.
*/
func (f *Forest) Predict(o Observation) (string, error) {
	if f == nil || len(f.Trees) == 0 {
		return "", ErrEmptyForest
	}
	votes := NewObservations(nil)
	for i, t := range f.Trees {
		label, err := t.Predict(o)
		if err != nil {
			return "", errors.Wrapf(err, "tree %d", i)
		}
		votes.Add(Observation{Class: label})
	}
	label, _ := votes.Mode()
	return label, nil
}

/*
Test takes a collection of observations and returns the rate of
observations whose class the forest predicts correctly and the number
of observations for which the forest could not make a prediction.
Failed predictions count as incorrect.
*/
func (f *Forest) Test(data *Observations) (float64, int) {
	return test(f, data)
}

func (f *Forest) String() string {
	var sb strings.Builder
	for i, t := range f.Trees {
		fmt.Fprintf(&sb, "[tree %d]\n%s", i, t)
	}
	return sb.String()
}
