package main

import (
	"fmt"

	"github.com/pbanos/grove/pkg/bio"
	"github.com/pbanos/grove/pkg/grove"
	"github.com/spf13/cobra"
)

type describeCmdConfig struct {
	*rootCmdConfig
	dataInput string
}

func describeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &describeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe a set of observations",
		Long:  `Print a summary of a set of observations, statistics for each of its columns and the best split over all its features`,
		Run: func(cmd *cobra.Command, args []string) {
			config.load()
			obs, err := config.readObservations(cmd.Context(), config.dataInput)
			if err != nil {
				config.fail(2, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, obs)
			fmt.Fprintln(out, bio.Describe(obs))
			best := grove.NewCandidates(obs).BestFor(obs.Features())
			if best == nil {
				fmt.Fprintln(out, "No split available")
				return
			}
			fmt.Fprintf(out, "Best split: %v\n", best)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the observations (defaults to STDIN, interpreted as CSV)")
	return cmd
}

func (dcc *describeCmdConfig) load() {
	dcc.dataInput = dcc.v.GetString("input")
}
