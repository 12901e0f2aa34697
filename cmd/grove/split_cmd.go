package main

import (
	"math/rand"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/grove"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	*setCmdConfig
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(setConfig *setCmdConfig) *cobra.Command {
	config := &splitCmdConfig{setCmdConfig: setConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, sending each observation to the split set with a given probability`,
		Run: func(cmd *cobra.Command, args []string) {
			config.load()
			err := config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			obs, err := config.readObservations(cmd.Context(), config.setInput)
			if err != nil {
				config.fail(2, err)
			}
			config.Logf("Splitting %v with a %d%% probability and seed %d...", obs, config.splitProbability, config.seed)
			output, split := splitObservations(obs.Observations(), config.splitProbability, rand.New(rand.NewSource(config.seed)))
			err = config.writeObservations(cmd.Context(), config.setOutput, output)
			if err != nil {
				config.fail(3, err)
			}
			err = config.writeObservations(cmd.Context(), config.splitOutput, split)
			if err != nil {
				config.fail(4, err)
			}
			config.Logf("Done: %d observations in output set, %d in split set", len(output), len(split))
		},
	}
	cmd.Flags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the split set (required)")
	cmd.Flags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that an observation of the set will be assigned to the split set")
	cmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of observations (defaults to one based on the current time)")
	return cmd
}

func (scc *splitCmdConfig) load() {
	scc.setCmdConfig.load()
	scc.splitOutput = scc.v.GetString("split-output")
	scc.splitProbability = scc.v.GetInt("split-probability")
	scc.seed = seed(scc.v)
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput == "" {
		return errors.New("required split-output flag was not set")
	}
	if scc.splitOutput == scc.setOutput {
		return errors.New("output and split-output must be different")
	}
	if scc.splitProbability < 0 || scc.splitProbability > 100 {
		return errors.Newf("split-probability must be between 0 and 100, got %d", scc.splitProbability)
	}
	return nil
}

// splitObservations sends every observation to split with a probability of percent%, keeping their order.
func splitObservations(observations []grove.Observation, percent int, r *rand.Rand) (output, split []grove.Observation) {
	for _, o := range observations {
		if r.Intn(100) < percent {
			split = append(split, o)
		} else {
			output = append(output, o)
		}
	}
	return output, split
}
