package grove

// Error represents an error raised by the grove package itself,
// as opposed to errors coming from I/O.
type Error string

/*
ErrMissingBranch is the error returned by the Predict method of a stump
node when the branch an observation is classified into has no child
predictor. It indicates a mismatch between training and inference.
*/
const ErrMissingBranch = Error("no predictor for branch")

// ErrEmptyTree is returned when predicting with a tree that has no root.
const ErrEmptyTree = Error("tree has no root predictor")

// ErrEmptyForest is returned when predicting with a forest without trees.
const ErrEmptyForest = Error("forest has no trees")

// ErrInvalidFolds is returned when a dataset cannot be split in the
// requested number of folds.
const ErrInvalidFolds = Error("invalid number of folds")

// ErrEmptyFold is returned when evaluating a fold with nothing held out.
const ErrEmptyFold = Error("fold has no held-out observations")

// ErrInvalidForestSize is returned for forest sizes lower than 1.
const ErrInvalidForestSize = Error("forest size must be a positive integer")

func (e Error) Error() string {
	return string(e)
}
