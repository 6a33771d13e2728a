// Package cmd provides the commands of the pollutrace CLI.
package cmd

import (
	"fmt"

	"github.com/lintang-b-s/Pollutrace/pkg/engine"
	"github.com/lintang-b-s/Pollutrace/pkg/http/usecases"
	"github.com/lintang-b-s/Pollutrace/pkg/logger"
	"github.com/lintang-b-s/Pollutrace/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type rootOptions struct {
	configDir string
}

// NewRootCmd builds the command tree. Every subcommand loads the zone files named by the flags,
// config.yaml or POLLUTRACE_* variables, in that order of precedence.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "pollutrace",
		Short: "Trace pollution spread and route around polluted zones",
		Long: `pollutrace ranks air quality zones, traces how pollution spreads with the wind
and computes penalized and constrained routes through the zone network.

Examples:
  pollutrace rank
  pollutrace trace --source Downtown
  pollutrace spread --source Downtown
  pollutrace route constrained --source Harbor --blocked Mill`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return util.ReadConfig(opts.configDir)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configDir, "config-dir", "./data/", "directory holding config.yaml")
	flags.String("zones", "", "zone readings csv (name,pm25,pm10,co[,no2],wind)")
	flags.String("links", "", "propagation links csv (from,to,weight)")
	flags.String("network", "", "penalized routing network csv (from,to,weight)")
	flags.String("routes", "", "constrained routing graph csv (from,to,weight)")
	flags.Bool("routes-directed", false, "treat the routes csv as directed arcs")
	flags.String("log-level", "", "zap log level")

	for key, name := range map[string]string{
		util.CONFIG_ZONES_FILE:      "zones",
		util.CONFIG_LINKS_FILE:      "links",
		util.CONFIG_NETWORK_FILE:    "network",
		util.CONFIG_ROUTES_FILE:     "routes",
		util.CONFIG_ROUTES_DIRECTED: "routes-directed",
		util.CONFIG_LOG_LEVEL:       "log-level",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(
		newRankCmd(),
		newLookupCmd(),
		newTraceCmd("trace", "dfs", "Depth first decay trace from a source zone"),
		newTraceCmd("spread", "bfs", "Breadth first decay spread from a source zone"),
		newRouteCmd(),
		newSpikeCmd(),
	)
	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// loadService builds the zone service from the configured files. the logger writes to stderr
// so reports on stdout stay clean.
func loadService() (*usecases.ZoneService, *zap.Logger, error) {
	log, err := logger.NewWithLevel(viper.GetString(util.CONFIG_LOG_LEVEL))
	if err != nil {
		return nil, nil, err
	}

	zoneEngine, err := engine.NewEngineFromFiles(engine.FilesFromViper(), engine.OptionsFromViper(), log)
	if err != nil {
		return nil, nil, fmt.Errorf("load zones: %w", err)
	}
	return usecases.NewZoneService(log, zoneEngine), log, nil
}
