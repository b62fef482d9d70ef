package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/arvidh/lifeline/internal/config"
	"github.com/arvidh/lifeline/internal/db"
	"github.com/arvidh/lifeline/internal/notify"
	"github.com/arvidh/lifeline/internal/schedule"
)

var rootCmd = &cobra.Command{
	Use:   "lifeline",
	Short: "Personal life timeline",
	Long:  "lifeline keeps a timeline of life events and renders it on a zoomable, pannable view.",
}

func Execute() error { return rootCmd.Execute() }

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Reminder.Enabled && os.Getenv("LIFELINE_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			go func() {
				schedule.RunConfigured(ctx, cfg, func() {
					title, msg := notify.FormatJournalPrompt(todayEventCount(cfg))
					_ = notify.Info(title, msg)
				})
			}()
			_ = cancel // canceled implicitly on process exit
		}
		return nil
	}

	rootCmd.AddCommand(addCmd, listCmd, timelineCmd, summaryCmd, versionCmd)
}

// todayEventCount returns how many events touch today, or 0 when the store
// is unavailable (the reminder still fires).
func todayEventCount(cfg config.Config) int {
	dbh, err := db.Open()
	if err != nil {
		return 0
	}
	defer dbh.Close()

	loc := cfg.Location()
	now := time.Now().In(loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	counts, err := db.CategoryCounts(dbh, start, start.Add(24*time.Hour))
	if err != nil {
		return 0
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
