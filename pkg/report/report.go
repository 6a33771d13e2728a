package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/propagation"
	"github.com/lintang-b-s/Pollutrace/pkg/engine/routing"
)

const (
	blockedLabel     = "blocked"
	unreachableLabel = "unreachable"
	abortedLabel     = "routing aborted"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WriteRanking prints zones in the order given, one row per zone.
func WriteRanking(w io.Writer, zones []da.Zone) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "RANK\tZONE\tAQI\tTIER\tWIND")
	for i, z := range zones {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", i+1, z.GetName(), z.GetAQI(), z.GetTier(), z.GetWind())
	}
	return tw.Flush()
}

func WriteZone(w io.Writer, z da.Zone) error {
	r := z.GetReadings()
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "zone\t%s\n", z.GetName())
	fmt.Fprintf(tw, "pm2.5\t%d\n", r.PM25)
	fmt.Fprintf(tw, "pm10\t%d\n", r.PM10)
	fmt.Fprintf(tw, "co\t%d\n", r.CO)
	if r.HasNO2 {
		fmt.Fprintf(tw, "no2\t%d\n", r.NO2)
	}
	fmt.Fprintf(tw, "wind\t%s\n", z.GetWind())
	fmt.Fprintf(tw, "aqi\t%d\n", z.GetAQI())
	fmt.Fprintf(tw, "tier\t%s\n", z.GetTier())
	return tw.Flush()
}

// FormatTrace renders a trace as "A (100%) -> B (50%) -> END".
func FormatTrace(steps []propagation.Step) string {
	var sb strings.Builder
	for _, s := range steps {
		fmt.Fprintf(&sb, "%s (%d%%) -> ", s.Name, s.Strength)
	}
	sb.WriteString("END")
	return sb.String()
}

func WriteTrace(w io.Writer, mode propagation.Mode, steps []propagation.Step) error {
	_, err := fmt.Fprintf(w, "%s: %s\n", mode, FormatTrace(steps))
	return err
}

func WritePenalized(w io.Writer, source string, res *routing.PenalizedResult) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "FROM\tTO\tCOST\tBLOCKED")
	for _, e := range res.Entries() {
		cost := unreachableLabel
		if e.Reached {
			cost = fmt.Sprintf("%d", e.Cost)
		}
		blocked := "no"
		if e.Blocked {
			blocked = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", source, e.Name, cost, blocked)
	}
	return tw.Flush()
}

func WriteConstrained(w io.Writer, source string, res *routing.ConstrainedResult) error {
	if res.Aborted() {
		_, err := fmt.Fprintf(w, "%s: %s, source zone is blocked\n", abortedLabel, source)
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "FROM\tTO\tCOST")
	for _, e := range res.Entries() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", source, e.Name, ConstrainedCell(e))
	}
	return tw.Flush()
}

// ConstrainedCell is the cost column of a constrained entry.
func ConstrainedCell(e routing.ConstrainedEntry) string {
	switch e.Status {
	case routing.StatusReachable:
		return fmt.Sprintf("%d", e.Cost)
	case routing.StatusBlocked:
		return blockedLabel
	default:
		return unreachableLabel
	}
}

func WriteSpike(w io.Writer, spike bool) error {
	msg := "no sudden spike in the zone network"
	if spike {
		msg = "sudden spike detected: the penalized zone network has a negative cycle"
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}
