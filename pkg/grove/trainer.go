package grove

import (
	"math"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
)

/*
Trainer grows decision trees and forests that predict the classes
of a collection of observations.

Every split of every tree is searched on a random subset of the
features, drawn from the trainer's random source. Two trainers built
with equally seeded sources on the same data grow identical trees.
*/
type Trainer struct {
	data *Observations
	rand *rand.Rand
}

/*
NewTrainer takes a collection of observations and a random source and
returns a Trainer. If the source is nil a time-seeded one is used.
*/
func NewTrainer(data *Observations, r *rand.Rand) *Trainer {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Trainer{data, r}
}

// NewSeededTrainer returns a Trainer whose random source uses the given seed.
func NewSeededTrainer(data *Observations, seed int64) *Trainer {
	return NewTrainer(data, rand.New(rand.NewSource(seed)))
}

/*
SampleFeatures returns floor(sqrt(F)) distinct feature indices taken
uniformly at random from the F features of the trainer's observations.
*/
func (t *Trainer) SampleFeatures() []int {
	features := t.data.Features()
	return sampleFeatures(t.rand, features, int(math.Sqrt(float64(len(features)))))
}

func sampleFeatures(r *rand.Rand, features []int, k int) []int {
	if k > len(features) {
		panic(errors.AssertionFailedf("cannot sample %d features out of %d", k, len(features)))
	}
	sample := make([]int, 0, k)
	for _, i := range r.Perm(len(features))[:k] {
		sample = append(sample, features[i])
	}
	return sample
}

/*
GeneratePredictor takes a collection of observations and returns the
root node of a tree predicting their classes.

Collections with at most one observation, and collections no sampled
classifier manages to split, become leaves predicting their mode.
Otherwise the best candidate's classifier becomes a stump whose children
are generated recursively from each group of its partition.
*/
func (t *Trainer) GeneratePredictor(data *Observations) *Node {
	mode, _ := data.Mode()
	if data.Count() <= 1 {
		return NewLeaf(mode)
	}
	candidate := NewCandidates(data).BestFor(t.SampleFeatures())
	if candidate == nil || !candidate.Splits() {
		return NewLeaf(mode)
	}
	children := make(map[Branch]*Node, len(candidate.Partition))
	for _, b := range Branches {
		group, ok := candidate.Partition[b]
		if !ok {
			continue
		}
		children[b] = t.GeneratePredictor(group)
	}
	return NewStump(candidate.Classifier, children)
}

// GenerateTree returns a tree grown on all the trainer's observations.
func (t *Trainer) GenerateTree() *Tree {
	return &Tree{Root: t.GeneratePredictor(t.data)}
}

/*
GenerateForest returns a forest of the given number of trees, each
grown independently on all the trainer's observations.
*/
func (t *Trainer) GenerateForest(size int) *Forest {
	forest := &Forest{Trees: make([]*Tree, 0, size)}
	for i := 0; i < size; i++ {
		forest.Add(t.GenerateTree())
	}
	return forest
}
