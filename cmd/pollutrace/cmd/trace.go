package cmd

import (
	"fmt"

	"github.com/lintang-b-s/Pollutrace/pkg/report"
	"github.com/spf13/cobra"
)

func newTraceCmd(use, mode, short string) *cobra.Command {
	var sources []string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sources) == 0 {
				return fmt.Errorf("at least one --source is required")
			}
			svc, log, err := loadService()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync

			if len(sources) == 1 {
				m, steps, err := svc.Trace(mode, sources[0])
				if err != nil {
					return err
				}
				return report.WriteTrace(cmd.OutOrStdout(), m, steps)
			}

			m, traces, err := svc.TraceMany(cmd.Context(), mode, sources)
			if err != nil {
				return err
			}
			for _, steps := range traces {
				if err := report.WriteTrace(cmd.OutOrStdout(), m, steps); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&sources, "source", "s", nil, "source zone, repeat or comma separate for several")
	return cmd
}
