package schedule

import (
	"context"
	"time"

	"github.com/arvidh/lifeline/internal/config"
)

// NextAt computes the next occurrence of the configured reminder time.
func NextAt(now time.Time, cfg config.Config) time.Time {
	loc := cfg.Location()
	now = now.In(loc)

	// parse "HH:MM"
	hour, min := 20, 0
	if len(cfg.Reminder.Time) >= 4 {
		if t, err := time.ParseInLocation("15:04", cfg.Reminder.Time, loc); err == nil {
			hour = t.Hour()
			min = t.Minute()
		}
	}

	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.Add(24 * time.Hour)
	}
	return cand
}

// RunConfigured runs the reminder callback at the configured schedule until
// ctx is canceled.
func RunConfigured(ctx context.Context, cfg config.Config, f func()) {
	next := NextAt(time.Now(), cfg)
	t := time.NewTimer(time.Until(next))
	for {
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			f()
			next = NextAt(time.Now(), cfg)
			t.Reset(time.Until(next))
		}
	}
}
