package cmd

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/Pollutrace/pkg/report"
	"github.com/spf13/cobra"
)

func newRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute routes through the zone network",
	}
	cmd.AddCommand(newPenalizedCmd(), newConstrainedCmd())
	return cmd
}

func newPenalizedCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "penalized",
		Short: "Penalized costs from a source zone, marking severe zones as blocked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, log, err := loadService()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync

			res, err := svc.Penalized(source)
			if err != nil {
				return err
			}
			return report.WritePenalized(cmd.OutOrStdout(), source, res)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "source zone")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}

func newConstrainedCmd() *cobra.Command {
	var (
		source        string
		penaltySource string
		blocked       []string
	)

	cmd := &cobra.Command{
		Use:   "constrained",
		Short: "Shortest routes from a source zone that never enter a blocked zone",
		Long: `Blocked zones are the ones the penalized solve from --penalty-source marks
(the source itself by default) plus every zone named with --blocked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, log, err := loadService()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync

			res, names, err := svc.Constrained(source, penaltySource, blocked)
			if err != nil {
				return err
			}
			if len(names) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "blocked: %s\n", strings.Join(names, ", "))
			}
			return report.WriteConstrained(cmd.OutOrStdout(), source, res)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "source zone")
	cmd.Flags().StringVar(&penaltySource, "penalty-source", "", "source of the penalized solve that blocks zones")
	cmd.Flags().StringSliceVar(&blocked, "blocked", nil, "extra zones to block")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}
