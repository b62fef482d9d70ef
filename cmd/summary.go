package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arvidh/lifeline/internal/config"
	"github.com/arvidh/lifeline/internal/db"
	"github.com/arvidh/lifeline/internal/dateutil"
	"github.com/arvidh/lifeline/internal/timeline"
)

var summaryPreset string

// summaryCmd prints event statistics and a per-category breakdown for a
// window.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Event statistics for a date window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		start, end, err := dateutil.GetDateRange(summaryPreset, loc)
		if err != nil {
			return fmt.Errorf("invalid preset %q: %w", summaryPreset, err)
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		events, err := db.EventsBetween(dbh, start, end)
		if err != nil {
			return err
		}
		counts, err := db.CategoryCounts(dbh, start, end)
		if err != nil {
			return err
		}

		stats := timeline.ComputeStatistics(events)

		fmt.Printf("Window %s — %s:\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
		fmt.Printf("  %-10s %3d (%d point, %d duration)\n",
			"events", stats.TotalEvents, stats.PointEvents, stats.DurationEvents)
		if stats.TotalEvents > 0 {
			fmt.Printf("  %-10s %s — %s (%.1f days)\n", "span",
				stats.Earliest.In(loc).Format("2006-01-02"),
				stats.Latest.In(loc).Format("2006-01-02"),
				stats.SpanDays)
		}

		cats := make([]string, 0, len(counts))
		for c := range counts {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		for _, c := range cats {
			fmt.Printf("  %-10s %3d\n", c, counts[c])
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryPreset, "preset", "month", "Date preset: today, yesterday, week, month, year, last30days, last365days")
}
