package grove

import (
	"fmt"
)

/*
Candidate represents a classifier proposed to split a collection of
observations, together with the partition it induces on it.
*/
type Candidate struct {
	Classifier Classifier
	Partition  map[Branch]*Observations
}

/*
NewCandidate takes a classifier and a collection of observations and
returns the candidate resulting from partitioning the collection with
the classifier.
*/
func NewCandidate(c Classifier, obs *Observations) *Candidate {
	return &Candidate{Classifier: c, Partition: obs.Partition(c)}
}

/*
Score returns the Gini impurity of each group in the candidate's
partition weighted by the size of the group. Lower is better.
*/
func (c *Candidate) Score() float64 {
	var total int
	for _, b := range Branches {
		if group, ok := c.Partition[b]; ok {
			total += group.Count()
		}
	}
	if total == 0 {
		return 0.0
	}
	var score float64
	for _, b := range Branches {
		group, ok := c.Partition[b]
		if !ok {
			continue
		}
		score += group.GiniImpurity() * float64(group.Count()) / float64(total)
	}
	return score
}

// Splits returns whether the candidate separates its data in two groups.
func (c *Candidate) Splits() bool {
	var groups int
	for _, group := range c.Partition {
		if group.Count() > 0 {
			groups++
		}
	}
	return groups > 1
}

func (c *Candidate) String() string {
	result := fmt.Sprintf("Candidate: %v, score=%f", c.Classifier, c.Score())
	for _, b := range Branches {
		if group, ok := c.Partition[b]; ok {
			result = fmt.Sprintf("%s\n  %v %s", result, b, group)
		}
	}
	return result
}

/*
Candidates searches the best way to split a collection of observations.
*/
type Candidates struct {
	data *Observations
}

// NewCandidates returns Candidates for the given observations.
func NewCandidates(data *Observations) *Candidates {
	return &Candidates{data}
}

/*
BestFor takes a slice of feature indices and returns the candidate with
the lowest score among those built from every classifier the observations
allow on those features. Features are tried in the given order and, for
each, observations in collection order; on equal scores the first
candidate is kept. It returns nil when no classifier can be generated.
*/
func (cs *Candidates) BestFor(features []int) *Candidate {
	var best *Candidate
	var bestScore float64
	for _, classifier := range cs.data.ClassifiersFor(features) {
		candidate := NewCandidate(classifier, cs.data)
		score := candidate.Score()
		if best == nil || score < bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best
}
