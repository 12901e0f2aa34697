package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/grove"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	dataInput  string
	testInput  string
	forestSize int
	seed       int64
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a forest",
		Long:  `Grow a forest from a training set and test its performance against a testing set`,
		Run: func(cmd *cobra.Command, args []string) {
			config.load()
			err := config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			trainingSet, err := config.readObservations(cmd.Context(), config.dataInput)
			if err != nil {
				config.fail(2, err)
			}
			testingSet, err := config.readObservations(cmd.Context(), config.testInput)
			if err != nil {
				config.fail(3, err)
			}
			config.Logf("Growing %d trees from %v with seed %d...", config.forestSize, trainingSet, config.seed)
			forest := grove.NewSeededTrainer(trainingSet, config.seed).GenerateForest(config.forestSize)
			config.Logf("Testing forest against testing set with %d observations...", testingSet.Count())
			accuracy, failures := forest.Test(testingSet)
			config.Logf("Done")
			fmt.Fprintf(cmd.OutOrStdout(), "%f success rate, failed to make a prediction for %d observations\n", accuracy, failures)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the training observations (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.testInput), "test", "t", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the testing observations (required)")
	cmd.Flags().IntVarP(&(config.forestSize), "trees", "n", 10, "number of trees in the forest")
	cmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed for the random selection of features (defaults to one based on the current time)")
	return cmd
}

func (tcc *testCmdConfig) load() {
	tcc.dataInput = tcc.v.GetString("input")
	tcc.testInput = tcc.v.GetString("test")
	tcc.forestSize = tcc.v.GetInt("trees")
	tcc.seed = seed(tcc.v)
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.testInput == "" {
		return errors.New("required test flag was not set")
	}
	if tcc.dataInput == tcc.testInput {
		return errors.New("training and testing sets must be different")
	}
	if tcc.forestSize < 1 {
		return errors.Wrapf(grove.ErrInvalidForestSize, "got %d trees", tcc.forestSize)
	}
	return nil
}
