package grove

import (
	"math"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

/*
Fold is one of the splits of a k-fold partition of a dataset: the
items held out for testing and the remaining ones, for training.
*/
type Fold[T any] struct {
	HeldOut   []T
	Remaining []T
}

/*
KFoldSplits takes a slice of items and a number of folds k and returns k
folds. The slice is cut in k contiguous chunks, the first len(data) mod k
of them one item longer than the rest, and each fold holds out one chunk
and keeps the others, in their original order, as remaining items.
It returns ErrInvalidFolds if k is lower than 2 or greater than len(data).
*/
func KFoldSplits[T any](data []T, k int) ([]Fold[T], error) {
	if k < 2 || k > len(data) {
		return nil, errors.Wrapf(ErrInvalidFolds, "cannot split %d items in %d folds", len(data), k)
	}
	n, extra := len(data)/k, len(data)%k
	bounds := make([]int, k+1)
	for i := 0; i < k; i++ {
		size := n
		if i < extra {
			size++
		}
		bounds[i+1] = bounds[i] + size
	}
	folds := make([]Fold[T], 0, k)
	for i := 0; i < k; i++ {
		heldOut := append([]T(nil), data[bounds[i]:bounds[i+1]]...)
		remaining := make([]T, 0, len(data)-len(heldOut))
		remaining = append(remaining, data[:bounds[i]]...)
		remaining = append(remaining, data[bounds[i+1]:]...)
		folds = append(folds, Fold[T]{HeldOut: heldOut, Remaining: remaining})
	}
	return folds, nil
}

/*
Evaluation is the result of testing a forest against held-out
observations.
*/
type Evaluation struct {
	// Rate of held-out observations whose class was correctly predicted
	Accuracy float64 `json:"accuracy"`
	// Number of held-out observations the forest could not predict
	Failures int `json:"failures"`
}

/*
Evaluate takes a forest size, a seed and a fold and returns the evaluation
of a forest of that size, grown on the remaining observations of the fold
with a random source seeded with the seed, on its held-out observations.
*/
func Evaluate(forestSize int, seed int64, fold Fold[Observation]) (Evaluation, error) {
	if forestSize < 1 {
		return Evaluation{}, errors.Wrapf(ErrInvalidForestSize, "got %d", forestSize)
	}
	if len(fold.HeldOut) == 0 {
		return Evaluation{}, ErrEmptyFold
	}
	forest := NewSeededTrainer(NewObservations(fold.Remaining), seed).GenerateForest(forestSize)
	accuracy, failures := forest.Test(NewObservations(fold.HeldOut))
	return Evaluation{Accuracy: accuracy, Failures: failures}, nil
}

/*
CrossValidation holds the parameters for the k-fold cross-validation of
forests of different sizes.
*/
type CrossValidation struct {
	// Number of folds to split the data in, at least 2
	Folds int
	// Sizes of the forests to evaluate, in evaluation order
	ForestSizes []int
	// Seed for shuffling the data and growing the forests
	Seed int64
	// Logger for progress, defaults to a no-op logger
	Logger *zap.Logger
}

/*
SizeResult holds the per-fold evaluations of a forest size.
*/
type SizeResult struct {
	ForestSize int          `json:"forestSize"`
	Folds      []Evaluation `json:"folds"`
	Mean       float64      `json:"mean"`
	StdDev     float64      `json:"stdDev"`
	Failures   int          `json:"failures"`
}

/*
Report represents the results of a cross-validation run.
*/
type Report struct {
	ID           string       `json:"id"`
	CreatedAt    time.Time    `json:"createdAt"`
	Seed         int64        `json:"seed"`
	Folds        int          `json:"folds"`
	Observations int          `json:"observations"`
	Results      []SizeResult `json:"results"`
}

// Validate returns an error if the cross-validation parameters are not valid.
func (cv *CrossValidation) Validate() error {
	if cv.Folds < 2 {
		return errors.Wrapf(ErrInvalidFolds, "got %d, need at least 2", cv.Folds)
	}
	if len(cv.ForestSizes) == 0 {
		return errors.Wrap(ErrInvalidForestSize, "no forest sizes to evaluate")
	}
	for _, size := range cv.ForestSizes {
		if size < 1 {
			return errors.Wrapf(ErrInvalidForestSize, "got %d", size)
		}
	}
	return nil
}

/*
Run takes a collection of observations and, for every forest size,
shuffles them, splits them in folds and evaluates a forest of that size
on every fold. Both the shuffle and the forests use sources seeded with
the cross-validation seed, so runs with the same seed are reproducible.
*/
func (cv *CrossValidation) Run(data *Observations) (*Report, error) {
	if err := cv.Validate(); err != nil {
		return nil, err
	}
	logger := cv.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	report := &Report{
		CreatedAt:    time.Now().UTC(),
		Seed:         cv.Seed,
		Folds:        cv.Folds,
		Observations: data.Count(),
		Results:      make([]SizeResult, 0, len(cv.ForestSizes)),
	}
	for _, size := range cv.ForestSizes {
		observations := data.Observations()
		r := rand.New(rand.NewSource(cv.Seed))
		r.Shuffle(len(observations), func(i, j int) {
			observations[i], observations[j] = observations[j], observations[i]
		})
		folds, err := KFoldSplits(observations, cv.Folds)
		if err != nil {
			return nil, err
		}
		result := SizeResult{ForestSize: size, Folds: make([]Evaluation, 0, len(folds))}
		accuracies := make([]float64, 0, len(folds))
		for i, fold := range folds {
			evaluation, err := Evaluate(size, cv.Seed, fold)
			if err != nil {
				return nil, errors.Wrapf(err, "evaluating fold %d for forest size %d", i, size)
			}
			logger.Debug("fold evaluated",
				zap.Int("forest_size", size),
				zap.Int("fold", i),
				zap.Int("held_out", len(fold.HeldOut)),
				zap.Float64("accuracy", evaluation.Accuracy),
				zap.Int("failures", evaluation.Failures))
			result.Folds = append(result.Folds, evaluation)
			result.Failures += evaluation.Failures
			accuracies = append(accuracies, evaluation.Accuracy)
		}
		result.Mean, result.StdDev = stat.MeanStdDev(accuracies, nil)
		if math.IsNaN(result.StdDev) {
			result.StdDev = 0.0
		}
		logger.Info("forest size evaluated",
			zap.Int("forest_size", size),
			zap.Float64("mean_accuracy", result.Mean),
			zap.Float64("std_dev", result.StdDev),
			zap.Int("failures", result.Failures))
		report.Results = append(report.Results, result)
	}
	return report, nil
}
