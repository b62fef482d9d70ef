package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/arvidh/lifeline/internal/config"
	"github.com/arvidh/lifeline/internal/db"
	"github.com/arvidh/lifeline/internal/timeline"
	"github.com/arvidh/lifeline/internal/ui"
)

// timelineCmd opens the zoomable timeline TUI backed by the event store.
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Open the timeline view",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		source := func(start, end time.Time) ([]timeline.Event, error) {
			return db.EventsBetween(dbh, start, end)
		}
		return ui.Run(source, cfg)
	},
}
