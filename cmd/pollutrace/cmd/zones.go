package cmd

import (
	"github.com/lintang-b-s/Pollutrace/pkg/report"
	"github.com/spf13/cobra"
)

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank",
		Short: "List zones by composite index, most polluted first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, log, err := loadService()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync

			return report.WriteRanking(cmd.OutOrStdout(), svc.RankZones())
		},
	}
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [zone]",
		Short: "Show the readings, index and tier of one zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, log, err := loadService()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync

			zone, err := svc.GetZone(args[0])
			if err != nil {
				return err
			}
			return report.WriteZone(cmd.OutOrStdout(), zone)
		},
	}
}

func newSpikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spike",
		Short: "Report whether the penalized zone network has a negative cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, log, err := loadService()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync

			return report.WriteSpike(cmd.OutOrStdout(), svc.DetectSpike())
		},
	}
}
