package timeline

import "time"

// Event is the read-only record the layout core consumes. The store owns and
// mutates events; the core only reads them. A nil End marks a point event.
type Event struct {
	ID       int64
	Title    string
	Category string
	Start    time.Time
	End      *time.Time
}

// IsPoint reports whether the event has no duration.
func (e Event) IsPoint() bool { return e.End == nil }

// EndOrStart returns the event's end, or its start for point events.
func (e Event) EndOrStart() time.Time {
	if e.End != nil {
		return *e.End
	}
	return e.Start
}
