package timeline

import (
	"sort"
	"time"
)

const (
	// DefaultTrackHeight is the vertical pitch between tracks.
	DefaultTrackHeight = 30.0

	// EventHeight is the fixed height of a laid-out event rectangle.
	EventHeight = 24.0

	// overlapBuffer is the pixel margin added on each side of an event's
	// interval before testing for track collision, so adjacent events do
	// not render flush against each other.
	overlapBuffer = 4.0
)

// EventLayout is the computed screen geometry for one event in one layout
// pass. It is ephemeral: recomputed on every pass, never persisted, and owned
// by the caller that requested it.
type EventLayout struct {
	EventID int64
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Track   int
	Visible bool
	Opacity float64
}

// span is a buffered pixel interval already placed on a track.
type span struct {
	start, end float64
}

// CalculateLayout converts events into non-overlapping screen layouts for the
// given zoom and reference date (the pixel-space origin). viewStart/viewEnd
// bound the visible pixel range; trackHeight <= 0 selects DefaultTrackHeight.
//
// Events are stable-sorted by start date and packed first-fit onto the lowest
// track whose placed intervals, expanded by the overlap buffer, stay clear of
// the candidate. The packing is intentionally greedy rather than optimal:
// track indices are observable output and must stay deterministic for a given
// input order.
func CalculateLayout(events []Event, zoom ZoomLevel, reference time.Time, viewStart, viewEnd float64, trackHeight float64) []EventLayout {
	if trackHeight <= 0 {
		trackHeight = DefaultTrackHeight
	}
	if len(events) == 0 {
		return nil
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	layouts := make([]EventLayout, 0, len(sorted))
	var tracks [][]span

	for _, ev := range sorted {
		x := PixelPosition(ev.Start, reference, zoom)
		w := EventWidth(ev.Start, ev.End, zoom)

		buffered := span{start: x - overlapBuffer, end: x + w + overlapBuffer}

		track := -1
		for i, placed := range tracks {
			if fits(placed, buffered) {
				track = i
				break
			}
		}
		if track == -1 {
			track = len(tracks)
			tracks = append(tracks, nil)
		}
		tracks[track] = append(tracks[track], buffered)

		layouts = append(layouts, EventLayout{
			EventID: ev.ID,
			X:       x,
			Y:       float64(track) * trackHeight,
			Width:   w,
			Height:  EventHeight,
			Track:   track,
			Visible: intersectsHalfOpen(x, x+w, viewStart, viewEnd),
			Opacity: 1.0,
		})
	}

	return layouts
}

// fits reports whether the buffered candidate interval stays clear of every
// interval already placed on a track.
func fits(placed []span, candidate span) bool {
	for _, s := range placed {
		if candidate.start < s.end && s.start < candidate.end {
			return false
		}
	}
	return true
}

// intersectsHalfOpen tests [aStart, aEnd) against [bStart, bEnd). A layout
// ending exactly at the viewport's left edge is not visible; one starting
// exactly there is.
func intersectsHalfOpen(aStart, aEnd, bStart, bEnd float64) bool {
	return aStart < bEnd && aEnd > bStart
}

// VisibleLayouts re-filters an already-computed layout list against a new
// pixel window, using the same half-open rule as CalculateLayout. It is the
// cheap path for scroll-only updates: track assignment is untouched, so the
// result is a subset of layouts in the original order.
func VisibleLayouts(layouts []EventLayout, viewStart, viewEnd float64) []EventLayout {
	var out []EventLayout
	for _, l := range layouts {
		if intersectsHalfOpen(l.X, l.X+l.Width, viewStart, viewEnd) {
			out = append(out, l)
		}
	}
	return out
}

// TotalHeight returns the canvas height needed to show every track.
// trackHeight <= 0 selects DefaultTrackHeight. An empty layout list still
// reports one track's height so a scrollable canvas never collapses.
func TotalHeight(layouts []EventLayout, trackHeight float64) float64 {
	if trackHeight <= 0 {
		trackHeight = DefaultTrackHeight
	}
	maxTrack := 0
	for _, l := range layouts {
		if l.Track > maxTrack {
			maxTrack = l.Track
		}
	}
	return float64(maxTrack+1) * trackHeight
}
