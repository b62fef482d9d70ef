package timeline

import "time"

// DefaultViewportHeight is the vertical extent a fresh viewport assumes until
// the renderer reports a real size.
const DefaultViewportHeight = 600.0

// Viewport is the camera over the timeline: the visible date range and its
// pixel-space mapping. It is a single-owner mutable value; all mutation goes
// through SetZoom, Pan and CenterOn on one goroutine (the render loop).
// PixelsPerDay always equals PixelsPerDay(Zoom) - the mutators keep the two
// in step.
type Viewport struct {
	StartDate      time.Time
	EndDate        time.Time
	CenterDate     time.Time
	Zoom           ZoomLevel
	PixelsPerDay   float64
	Width          float64
	Height         float64
	ScrollPosition float64
}

// NewViewport creates a viewport of the given pixel width centered on a date.
func NewViewport(center time.Time, zoom ZoomLevel, width float64) *Viewport {
	v := &Viewport{
		CenterDate: center,
		Zoom:       zoom,
		Width:      width,
		Height:     DefaultViewportHeight,
	}
	v.rescale(zoom)
	return v
}

// rescale recomputes the pixel density and the window around CenterDate.
func (v *Viewport) rescale(zoom ZoomLevel) {
	v.Zoom = zoom
	v.PixelsPerDay = PixelsPerDay(zoom)
	half := VisibleDays(zoom, v.Width) / 2
	v.StartDate = addDays(v.CenterDate, -half)
	v.EndDate = addDays(v.CenterDate, half)
}

func addDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * hoursPerDay * float64(time.Hour)))
}

// DateToPixel maps a date to a viewport-relative pixel offset, clamped to
// [0, Width] for dates outside the visible window.
func (v *Viewport) DateToPixel(date time.Time) float64 {
	px := daysBetween(v.StartDate, date) * v.PixelsPerDay
	if px < 0 {
		return 0
	}
	if px > v.Width {
		return v.Width
	}
	return px
}

// PixelToDate maps a viewport-relative pixel offset back to a date. It is
// deliberately unclamped: pan and zoom math probes dates outside the current
// window.
func (v *Viewport) PixelToDate(pixel float64) time.Time {
	return addDays(v.StartDate, pixel/v.PixelsPerDay)
}

// IsDateVisible reports whether the date falls inside the window, inclusive
// at both ends: the window owns both its endpoints.
func (v *Viewport) IsDateVisible(date time.Time) bool {
	return !date.Before(v.StartDate) && !date.After(v.EndDate)
}

// IsEventVisible reports whether the closed interval [start, end] intersects
// the window. Point events pass start == end.
func (v *Viewport) IsEventVisible(start, end time.Time) bool {
	return !end.Before(v.StartDate) && !start.After(v.EndDate)
}

// SetZoom changes the zoom level, re-centering on the unchanged CenterDate:
// the date under the viewport's center must not move when zoom changes.
func (v *Viewport) SetZoom(zoom ZoomLevel) {
	v.rescale(zoom)
}

// Pan shifts the window by deltaPixels at the current zoom. Positive deltas
// move the window earlier in time. ScrollPosition accumulates the raw deltas.
func (v *Viewport) Pan(deltaPixels float64) {
	days := deltaPixels / v.PixelsPerDay
	v.StartDate = addDays(v.StartDate, -days)
	v.EndDate = addDays(v.EndDate, -days)
	v.CenterDate = addDays(v.CenterDate, -days)
	v.ScrollPosition += deltaPixels
}

// CenterOn re-windows the viewport around a date at the current zoom.
func (v *Viewport) CenterOn(date time.Time) {
	v.CenterDate = date
	v.rescale(v.Zoom)
}
