package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/bio"
	"github.com/pbanos/grove/pkg/grove"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput  string
	output     string
	format     string
	forestSize int
	seed       int64
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a forest from a set of observations",
		Long:  `Grow a random forest from a set of observations to predict their class.`,
		Run: func(cmd *cobra.Command, args []string) {
			config.load()
			err := config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			obs, err := config.readObservations(cmd.Context(), config.dataInput)
			if err != nil {
				config.fail(2, err)
			}
			config.Logf("Growing %d trees from %v with seed %d...", config.forestSize, obs, config.seed)
			forest := grove.NewSeededTrainer(obs, config.seed).GenerateForest(config.forestSize)
			config.Logf("Done")
			err = config.outputForest(cmd.OutOrStdout(), forest)
			if err != nil {
				config.fail(3, err)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the observations to grow the forest from (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated forest will be written (defaults to STDOUT)")
	cmd.Flags().StringVar(&(config.format), "format", "json", "format of the generated forest: json or text")
	cmd.Flags().IntVarP(&(config.forestSize), "trees", "n", 10, "number of trees in the forest")
	cmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed for the random selection of features (defaults to one based on the current time)")
	return cmd
}

func (gcc *growCmdConfig) load() {
	gcc.dataInput = gcc.v.GetString("input")
	gcc.output = gcc.v.GetString("output")
	gcc.format = gcc.v.GetString("format")
	gcc.forestSize = gcc.v.GetInt("trees")
	gcc.seed = seed(gcc.v)
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.forestSize < 1 {
		return errors.Wrapf(grove.ErrInvalidForestSize, "got %d trees", gcc.forestSize)
	}
	if gcc.format != "json" && gcc.format != "text" {
		return errors.Newf("unknown format %q, expected json or text", gcc.format)
	}
	return nil
}

func (gcc *growCmdConfig) outputForest(stdout io.Writer, forest *grove.Forest) error {
	w := stdout
	if gcc.output != "" {
		f, err := os.Create(gcc.output)
		if err != nil {
			return errors.Wrapf(err, "creating %s", gcc.output)
		}
		defer f.Close()
		w = f
	}
	if gcc.format == "text" {
		return bio.WriteTextForest(w, forest)
	}
	return bio.WriteJSONForest(w, forest)
}
