package grove

import (
	"fmt"
)

/*
Observations represents an ordered collection of observations that
keeps track of how many of them belong to each class.

The class frequencies are updated on every Add, so Count, Mode and
GiniImpurity never go over the whole collection.
*/
type Observations struct {
	observations []Observation
	frequencies  map[string]int
	classes      []string
}

/*
NewObservations takes a slice of observations and returns an
Observations collection holding them in the same order.
*/
func NewObservations(observations []Observation) *Observations {
	obs := &Observations{
		observations: make([]Observation, 0, len(observations)),
		frequencies:  make(map[string]int),
	}
	for _, o := range observations {
		obs.Add(o)
	}
	return obs
}

// Add appends an observation to the collection.
func (obs *Observations) Add(o Observation) {
	if obs.frequencies == nil {
		obs.frequencies = make(map[string]int)
	}
	if _, ok := obs.frequencies[o.Class]; !ok {
		obs.classes = append(obs.classes, o.Class)
	}
	obs.observations = append(obs.observations, o)
	obs.frequencies[o.Class]++
}

// Count returns the number of observations in the collection.
func (obs *Observations) Count() int {
	return len(obs.observations)
}

/*
Mode returns the most frequent class in the collection and true, or
an empty string and false if the collection is empty. When several
classes are tied, the first of them to be added is returned.
*/
func (obs *Observations) Mode() (string, bool) {
	var mode string
	var modeCount int
	for _, class := range obs.classes {
		if c := obs.frequencies[class]; c > modeCount {
			mode = class
			modeCount = c
		}
	}
	return mode, modeCount > 0
}

/*
GiniImpurity returns 1 - Σ p², p being the proportion of each class
in the collection. An empty collection has an impurity of 0.
*/
func (obs *Observations) GiniImpurity() float64 {
	total := float64(obs.Count())
	if total == 0 {
		return 0.0
	}
	var sum float64
	for _, class := range obs.classes {
		p := float64(obs.frequencies[class]) / total
		sum += p * p
	}
	return 1.0 - sum
}

/*
Features returns the indices of the features of the observations in the
collection, from 0 to the length of the first observation's feature
vector. All observations are expected to have as many features.
*/
func (obs *Observations) Features() []int {
	if len(obs.observations) == 0 {
		return []int{}
	}
	features := make([]int, len(obs.observations[0].Features))
	for i := range features {
		features[i] = i
	}
	return features
}

/*
Partition takes a classifier and returns the observations in the
collection grouped by the branch the classifier assigns them to.
Only branches with at least one observation are present in the result.
*/
func (obs *Observations) Partition(c Classifier) map[Branch]*Observations {
	result := make(map[Branch]*Observations, len(Branches))
	for _, o := range obs.observations {
		b := c.Classify(o)
		group, ok := result[b]
		if !ok {
			group = NewObservations(nil)
			result[b] = group
		}
		group.Add(o)
	}
	return result
}

/*
ClassifiersFor takes a slice of feature indices and returns a classifier
for every feature and observation in the collection, using the value of
the observation for the feature as threshold.
*/
func (obs *Observations) ClassifiersFor(features []int) []Classifier {
	classifiers := make([]Classifier, 0, len(features)*len(obs.observations))
	for _, f := range features {
		for _, o := range obs.observations {
			classifiers = append(classifiers, Classifier{Feature: f, Threshold: o.Feature(f)})
		}
	}
	return classifiers
}

// Observations returns a copy of the observations in the collection.
func (obs *Observations) Observations() []Observation {
	return append([]Observation(nil), obs.observations...)
}

// Frequencies returns a copy of the count of observations per class.
func (obs *Observations) Frequencies() map[string]int {
	result := make(map[string]int, len(obs.frequencies))
	for k, v := range obs.frequencies {
		result[k] = v
	}
	return result
}

// Classes returns the classes in the collection in order of appearance.
func (obs *Observations) Classes() []string {
	return append([]string(nil), obs.classes...)
}

func (obs *Observations) String() string {
	mode, _ := obs.Mode()
	return fmt.Sprintf("Observations: N=%d, mode=%s, impurity=%f, features=%d", obs.Count(), mode, obs.GiniImpurity(), len(obs.Features()))
}
