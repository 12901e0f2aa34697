package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/bio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "GROVE"

// setup binds the flags of the executing command into a viper instance
// that also reads GROVE_ prefixed environment variables, and builds the logger.
func (rcc *rootCmdConfig) setup(cmd *cobra.Command) error {
	rcc.v = newViper()
	if err := rcc.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	rcc.logger = newLogger(os.Stderr, rcc.v.GetBool("verbose"), rcc.v.GetBool("log-json"))
	rcc.maxDBConns = rcc.v.GetInt("max-db-conns")
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

/*
applyExperiment sets the values of an experiment file as defaults, so
that flags and environment variables take precedence over them.
*/
func applyExperiment(v *viper.Viper, experiment *bio.Experiment) {
	if experiment.Seed != nil {
		v.SetDefault("seed", *experiment.Seed)
	}
	if experiment.Folds != 0 {
		v.SetDefault("folds", experiment.Folds)
	}
	if len(experiment.ForestSizes) > 0 {
		sizes := make([]string, len(experiment.ForestSizes))
		for i, size := range experiment.ForestSizes {
			sizes[i] = strconv.Itoa(size)
		}
		v.SetDefault("forest-sizes", strings.Join(sizes, ","))
	}
}

// seed returns the seed set by flag, environment or experiment, or one based on the current time.
func seed(v *viper.Viper) int64 {
	if v.IsSet("seed") {
		return v.GetInt64("seed")
	}
	return time.Now().UnixNano()
}

// parseForestSizes parses a comma separated list of positive forest sizes.
func parseForestSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		size, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing forest size %q", field)
		}
		if size < 1 {
			return nil, errors.Newf("forest sizes must be positive, got %d", size)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, errors.New("no forest sizes given")
	}
	return sizes, nil
}
