package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arvidh/lifeline/internal/config"
	"github.com/arvidh/lifeline/internal/db"
	"github.com/arvidh/lifeline/internal/dateutil"
)

var (
	addCategory string
	addStart    string
	addEnd      string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an event to the timeline",
	Long: `Examples:
	lifeline add "Dentist appointment" --start tomorrow
	lifeline add "Trip to Lisbon" --category travel --start 2024-06-10 --end 2024-06-17
	lifeline add "Started new job" --start "last month"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		title := strings.Join(args, " ")

		start := time.Now().In(loc)
		if addStart != "" {
			var err error
			start, err = dateutil.ParseFlexibleDate(addStart, loc)
			if err != nil {
				return fmt.Errorf("invalid --start date %q: %w", addStart, err)
			}
		}

		var end *time.Time
		if addEnd != "" {
			e, err := dateutil.ParseFlexibleDate(addEnd, loc)
			if err != nil {
				return fmt.Errorf("invalid --end date %q: %w", addEnd, err)
			}
			if e.Before(start) {
				return fmt.Errorf("--end %s is before --start %s",
					e.Format("2006-01-02"), start.Format("2006-01-02"))
			}
			end = &e
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		id, err := db.AddEvent(dbh, title, addCategory, start, end)
		if err != nil {
			return err
		}

		if end != nil {
			fmt.Printf("added event %d: %s (%s — %s)\n", id, title,
				start.Format("2006-01-02"), end.Format("2006-01-02"))
		} else {
			fmt.Printf("added event %d: %s (%s)\n", id, title, start.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addCategory, "category", "note", "Event category (travel, health, work, ...)")
	addCmd.Flags().StringVar(&addStart, "start", "", "Start date (supports: tomorrow, '2 weeks ago', 2024-06-10, ...)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "End date for duration events; omit for point events")
}
