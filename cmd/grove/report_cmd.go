package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/bio"
	"github.com/pbanos/grove/pkg/report"
	"github.com/pbanos/grove/pkg/report/redisstore"
	"github.com/spf13/cobra"
)

type reportCmdConfig struct {
	*rootCmdConfig
	redisAddr string
}

func reportCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &reportCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Browse stored cross-validation reports",
		Long:  `Browse the cross-validation reports stored on a Redis server`,
	}
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis-addr", "", "address of the Redis server storing the reports (required)")
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the IDs of the stored reports",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store, err := config.redisStore(config.v.GetString("redis-addr"))
			if err != nil {
				config.fail(1, err)
			}
			defer store.Close(cmd.Context())
			ids, err := store.List(cmd.Context())
			if err != nil {
				config.fail(2, err)
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
		},
	}, &cobra.Command{
		Use:   "show ID",
		Short: "Print a stored report",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store, err := config.redisStore(config.v.GetString("redis-addr"))
			if err != nil {
				config.fail(1, err)
			}
			defer store.Close(cmd.Context())
			r, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				config.fail(2, err)
			}
			if r == nil {
				config.fail(3, errors.Newf("report %s not found", args[0]))
			}
			err = bio.WriteReportTable(cmd.OutOrStdout(), r)
			if err != nil {
				config.fail(4, err)
			}
		},
	})
	return cmd
}

func (rcc *rootCmdConfig) redisStore(addr string) (report.Store, error) {
	if addr == "" {
		return nil, errors.New("required redis-addr flag was not set")
	}
	rcc.Logf("Connecting to Redis on %s...", addr)
	return redisstore.Dial(addr)
}
