package main

import (
	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/bio"
	"github.com/pbanos/grove/pkg/grove"
	"github.com/pbanos/grove/pkg/report"
	"github.com/pbanos/grove/pkg/report/redisstore"
	"github.com/spf13/cobra"
)

type crossvalCmdConfig struct {
	*rootCmdConfig
	dataInput       string
	experimentInput string
	redisAddr       string
	cv              grove.CrossValidation
}

func crossvalCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &crossvalCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "crossval",
		Short: "Estimate the accuracy of forests by k-fold cross-validation",
		Long: `Estimate the accuracy of forests of different sizes grown from a set of observations
by k-fold cross-validation, printing the accuracy on each fold, their mean and standard deviation.
Parameters can be taken from a YML experiment file, environment variables prefixed with GROVE_
and flags, in increasing order of precedence.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.load()
			if err != nil {
				config.fail(1, err)
			}
			err = config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			obs, err := config.readObservations(cmd.Context(), config.dataInput)
			if err != nil {
				config.fail(2, err)
			}
			config.Logf("Cross-validating forests of sizes %v on %d folds of %v with seed %d...", config.cv.ForestSizes, config.cv.Folds, obs, config.cv.Seed)
			r, err := config.cv.Run(obs)
			if err != nil {
				config.fail(3, err)
			}
			store, err := config.store()
			if err != nil {
				config.fail(4, err)
			}
			defer store.Close(cmd.Context())
			err = store.Create(cmd.Context(), r)
			if err != nil {
				config.fail(5, err)
			}
			err = bio.WriteReportTable(cmd.OutOrStdout(), r)
			if err != nil {
				config.fail(6, err)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the observations (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.experimentInput), "experiment", "e", "", "path to a YML file with the seed, folds and forestSizes of the experiment")
	cmd.Flags().IntP("folds", "k", 5, "number of folds")
	cmd.Flags().String("forest-sizes", "1,5,10", "comma separated list of forest sizes to evaluate")
	cmd.Flags().Int64("seed", 0, "seed for shuffling and growing the forests (defaults to one based on the current time)")
	cmd.Flags().StringVar(&(config.redisAddr), "redis-addr", "", "address of a Redis server on which to store the report")
	return cmd
}

func (ccc *crossvalCmdConfig) load() error {
	ccc.dataInput = ccc.v.GetString("input")
	ccc.experimentInput = ccc.v.GetString("experiment")
	ccc.redisAddr = ccc.v.GetString("redis-addr")
	if ccc.experimentInput != "" {
		ccc.Logf("Reading experiment from %s...", ccc.experimentInput)
		experiment, err := bio.ReadYMLExperimentFromFile(ccc.experimentInput)
		if err != nil {
			return err
		}
		applyExperiment(ccc.v, experiment)
	}
	sizes, err := parseForestSizes(ccc.v.GetString("forest-sizes"))
	if err != nil {
		return err
	}
	ccc.cv = grove.CrossValidation{
		Folds:       ccc.v.GetInt("folds"),
		ForestSizes: sizes,
		Seed:        seed(ccc.v),
		Logger:      ccc.Logger(),
	}
	return nil
}

func (ccc *crossvalCmdConfig) Validate() error {
	return errors.Wrap(ccc.cv.Validate(), "invalid cross-validation")
}

func (ccc *crossvalCmdConfig) store() (report.Store, error) {
	if ccc.redisAddr == "" {
		return report.NewMemoryStore(), nil
	}
	ccc.Logf("Connecting to Redis on %s to store the report...", ccc.redisAddr)
	return redisstore.Dial(ccc.redisAddr)
}
