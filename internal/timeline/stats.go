package timeline

import "time"

// Statistics is a read-only snapshot over an event set, used for summary
// display. It carries no layout state.
type Statistics struct {
	TotalEvents    int
	PointEvents    int
	DurationEvents int
	Earliest       time.Time
	Latest         time.Time
	SpanDays       float64
}

// ComputeStatistics scans the events once and returns counts and date bounds.
// For an empty set the zero value is returned.
func ComputeStatistics(events []Event) Statistics {
	var s Statistics
	s.TotalEvents = len(events)
	for i, ev := range events {
		if ev.IsPoint() {
			s.PointEvents++
		} else {
			s.DurationEvents++
		}
		end := ev.EndOrStart()
		if i == 0 {
			s.Earliest = ev.Start
			s.Latest = end
			continue
		}
		if ev.Start.Before(s.Earliest) {
			s.Earliest = ev.Start
		}
		if end.After(s.Latest) {
			s.Latest = end
		}
	}
	if s.TotalEvents > 0 {
		s.SpanDays = daysBetween(s.Earliest, s.Latest)
	}
	return s
}
