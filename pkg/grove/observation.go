package grove

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

/*
Observation represents a labeled data point: a classification
and an ordered vector of numeric features. Observations are
values and must not be modified once built.
*/
type Observation struct {
	Class    string
	Features []float64
}

/*
NewObservation takes a class and a slice of feature values and
returns an Observation holding a copy of the values.
*/
func NewObservation(class string, features ...float64) Observation {
	return Observation{Class: class, Features: append([]float64(nil), features...)}
}

/*
Feature returns the value of the feature at the given index. An
index out of range is a programming error and makes it panic.
*/
func (o Observation) Feature(index int) float64 {
	if index < 0 || index >= len(o.Features) {
		panic(errors.AssertionFailedf("feature index %d out of range for observation with %d features", index, len(o.Features)))
	}
	return o.Features[index]
}

func (o Observation) String() string {
	return fmt.Sprintf("%v => %s", o.Features, o.Class)
}

/*
Branch is the key a Classifier assigns to an observation: either
LessOrEqual or GreaterThan its threshold.
*/
type Branch uint8

const (
	// LessOrEqual is the branch for feature values not over the threshold
	LessOrEqual Branch = iota
	// GreaterThan is the branch for feature values over the threshold
	GreaterThan
)

// Branches lists both branches in the order they are always traversed.
var Branches = [...]Branch{LessOrEqual, GreaterThan}

func (b Branch) String() string {
	if b == GreaterThan {
		return ">"
	}
	return "≤"
}

// MarshalText encodes the branch as its symbol so it can key JSON maps.
func (b Branch) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

/*
Classifier is an axis-aligned threshold test on a single feature
of an observation.
*/
type Classifier struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
}

/*
Classify takes an observation and returns GreaterThan if its value
for the classifier feature is over the threshold, LessOrEqual otherwise.
*/
func (c Classifier) Classify(o Observation) Branch {
	if o.Feature(c.Feature) > c.Threshold {
		return GreaterThan
	}
	return LessOrEqual
}

func (c Classifier) String() string {
	return fmt.Sprintf("f%d > %v", c.Feature, c.Threshold)
}
