package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arvidh/lifeline/internal/config"
	"github.com/arvidh/lifeline/internal/db"
	"github.com/arvidh/lifeline/internal/dateutil"
	"github.com/arvidh/lifeline/internal/timeline"
)

var (
	listSince      string
	listUntil      string
	listPreset     string
	listCategories string
	listFormat     string
	listNoColor    bool
	listLimit      int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events in a date window",
	Long: `Examples:
	lifeline list                           # this month
	lifeline list --preset year             # this year
	lifeline list --since "3 months" --categories travel,health
	lifeline list --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		var since, until time.Time
		var err error

		switch {
		case listPreset != "":
			since, until, err = dateutil.GetDateRange(listPreset, loc)
			if err != nil {
				return fmt.Errorf("invalid preset %q: %w", listPreset, err)
			}
		case listSince != "":
			since, err = dateutil.ParseFlexibleDate(listSince, loc)
			if err != nil {
				return fmt.Errorf("invalid --since date %q: %w", listSince, err)
			}
		default:
			since, until, _ = dateutil.GetDateRange("month", loc)
		}

		if listUntil != "" {
			until, err = dateutil.ParseFlexibleDate(listUntil, loc)
			if err != nil {
				return fmt.Errorf("invalid --until date %q: %w", listUntil, err)
			}
		}
		if until.IsZero() {
			until = time.Now().In(loc)
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		events, err := db.EventsBetween(dbh, since, until)
		if err != nil {
			return err
		}
		events = filterCategories(events, listCategories)
		if listLimit > 0 && len(events) > listLimit {
			events = events[:listLimit]
		}

		switch listFormat {
		case "json":
			return writeJSON(os.Stdout, events)
		default:
			printEvents(events, loc, !listNoColor)
			return nil
		}
	},
}

func filterCategories(events []timeline.Event, csv string) []timeline.Event {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return events
	}
	keep := make(map[string]bool)
	for _, c := range strings.Split(csv, ",") {
		if c = strings.TrimSpace(c); c != "" {
			keep[strings.ToLower(c)] = true
		}
	}
	var out []timeline.Event
	for _, ev := range events {
		if keep[strings.ToLower(ev.Category)] {
			out = append(out, ev)
		}
	}
	return out
}

type eventJSON struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Start    string  `json:"start"`
	End      *string `json:"end,omitempty"`
}

func writeJSON(w *os.File, events []timeline.Event) error {
	out := make([]eventJSON, 0, len(events))
	for _, ev := range events {
		j := eventJSON{
			ID:       ev.ID,
			Title:    ev.Title,
			Category: ev.Category,
			Start:    ev.Start.Format(time.RFC3339),
		}
		if ev.End != nil {
			s := ev.End.Format(time.RFC3339)
			j.End = &s
		}
		out = append(out, j)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printEvents(events []timeline.Event, loc *time.Location, color bool) {
	if len(events) == 0 {
		fmt.Println("no events in window")
		return
	}

	dateStyle := lipgloss.NewStyle().Faint(true)
	catStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
	if !color {
		dateStyle = lipgloss.NewStyle()
		catStyle = lipgloss.NewStyle()
	}

	for _, ev := range events {
		when := ev.Start.In(loc).Format("2006-01-02")
		if ev.End != nil {
			when += " — " + ev.End.In(loc).Format("2006-01-02")
		}
		fmt.Printf("%4d  %s  %s  %s\n",
			ev.ID,
			dateStyle.Render(fmt.Sprintf("%-23s", when)),
			catStyle.Render(fmt.Sprintf("%-8s", ev.Category)),
			ev.Title)
	}
	fmt.Printf("%d event(s)\n", len(events))
}

func init() {
	listCmd.Flags().StringVar(&listSince, "since", "", "Window start (supports: yesterday, 'last month', 2024-01-15, ...)")
	listCmd.Flags().StringVar(&listUntil, "until", "", "Window end (defaults to now)")
	listCmd.Flags().StringVar(&listPreset, "preset", "", "Date preset: today, yesterday, week, month, year, last30days, last365days")
	listCmd.Flags().StringVar(&listCategories, "categories", "", "Filter by categories (comma-separated)")
	listCmd.Flags().StringVar(&listFormat, "format", "default", "Output format: default, json")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of events to print (0 = all)")
}
