package bio

import (
	"os"

	"github.com/cockroachdb/errors"
	yaml "gopkg.in/yaml.v2"
)

/*
Experiment holds the cross-validation parameters that can be kept in a
YML experiment file. Fields that are not present in the file are left
at their zero value, and Seed is nil.
*/
type Experiment struct {
	Seed        *int64 `yaml:"seed"`
	Folds       int    `yaml:"folds"`
	ForestSizes []int  `yaml:"forestSizes"`
}

/*
ReadYMLExperiment takes a slice of bytes with an experiment specification
in YML and returns the Experiment parsed from it or an error.
The YML is expected to be an object with optional seed, folds and
forestSizes properties, e.g.:

	seed: 42
	folds: 5
	forestSizes: [1, 5, 10]
*/
func ReadYMLExperiment(md []byte) (*Experiment, error) {
	experiment := &Experiment{}
	err := yaml.UnmarshalStrict(md, experiment)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yml experiment")
	}
	if experiment.Folds < 0 {
		return nil, errors.Newf("experiment folds must not be negative, got %d", experiment.Folds)
	}
	for _, size := range experiment.ForestSizes {
		if size < 1 {
			return nil, errors.Newf("experiment forest sizes must be positive, got %d", size)
		}
	}
	return experiment, nil
}

/*
ReadYMLExperimentFromFile takes a filepath string, reads its contents and uses
ReadYMLExperiment to parse it and return the experiment or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadYMLExperimentFromFile(filepath string) (*Experiment, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading experiment yml file %s", filepath)
	}
	experiment, err := ReadYMLExperiment(md)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing experiment yml file %s", filepath)
	}
	return experiment, nil
}
