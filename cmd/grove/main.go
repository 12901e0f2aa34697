package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose    bool
	logJSON    bool
	maxDBConns int
	v          *viper.Viper
	logger     *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cliParser().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "grove",
		Short: "grove is a tool to grow random forests",
		Long:  `A tool to grow random forest classifiers from your data, test them, and estimate their accuracy by k-fold cross-validation`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.Sync()
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress and debug information on STDERR")
	rootCmd.PersistentFlags().BoolVar(&(config.logJSON), "log-json", false, "log in JSON instead of a human friendly format")
	rootCmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	rootCmd.AddCommand(
		versionCmd(),
		describeCmd(config),
		growCmd(config),
		testCmd(config),
		crossvalCmd(config),
		setCmd(config),
		reportCmd(config),
	)
	return rootCmd
}
