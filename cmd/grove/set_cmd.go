package main

import (
	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput  string
	setOutput string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of observations",
		Long:  `Dump a set of observations from one backend into another`,
		Run: func(cmd *cobra.Command, args []string) {
			config.load()
			obs, err := config.readObservations(cmd.Context(), config.setInput)
			if err != nil {
				config.fail(2, err)
			}
			config.Logf("Dumping %v into output set...", obs)
			err = config.writeObservations(cmd.Context(), config.setOutput, obs.Observations())
			if err != nil {
				config.fail(3, err)
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the observations (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the output set (defaults to STDOUT in CSV)")
	cmd.AddCommand(splitCmd(config))
	return cmd
}

func (scc *setCmdConfig) load() {
	scc.setInput = scc.v.GetString("input")
	scc.setOutput = scc.v.GetString("output")
}
