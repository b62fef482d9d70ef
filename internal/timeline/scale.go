package timeline

import "time"

// Scale lookup tables and coordinate conversions. Everything in this file is
// stateless and safe to call from any goroutine. All conversions treat a day
// as exactly 24 hours so that PixelPosition and DateFromPixel stay exact
// inverses regardless of DST transitions in the dates' locations.

const hoursPerDay = 24.0

// PixelsPerDay returns the horizontal density for a zoom level.
func PixelsPerDay(z ZoomLevel) float64 {
	switch z {
	case ZoomYear:
		return 0.1
	case ZoomMonth:
		return 3.0
	case ZoomWeek:
		return 50.0
	case ZoomDay:
		return 800.0
	default:
		panic("timeline: invalid zoom level")
	}
}

// MinEventWidth returns the pixel floor that keeps point events visible and
// clickable at a given zoom.
func MinEventWidth(z ZoomLevel) float64 {
	switch z {
	case ZoomYear:
		return 2.0
	case ZoomMonth:
		return 4.0
	case ZoomWeek:
		return 8.0
	case ZoomDay:
		return 24.0
	default:
		panic("timeline: invalid zoom level")
	}
}

// GridInterval returns the axis label spacing in days.
func GridInterval(z ZoomLevel) float64 {
	switch z {
	case ZoomYear:
		return 365.0
	case ZoomMonth:
		return 30.0
	case ZoomWeek:
		return 7.0
	case ZoomDay:
		return 1.0
	default:
		panic("timeline: invalid zoom level")
	}
}

// VisibleDays returns how many days fit in a viewport of the given pixel
// width at the given zoom.
func VisibleDays(z ZoomLevel, viewportWidth float64) float64 {
	return viewportWidth / PixelsPerDay(z)
}

// daysBetween returns the signed distance from ref to date in fractional
// 24-hour days.
func daysBetween(ref, date time.Time) float64 {
	return date.Sub(ref).Hours() / hoursPerDay
}

// PixelPosition returns the pixel offset of date relative to reference at the
// given zoom. Dates before the reference yield negative offsets.
func PixelPosition(date, reference time.Time, z ZoomLevel) float64 {
	return daysBetween(reference, date) * PixelsPerDay(z)
}

// DateFromPixel is the inverse of PixelPosition for the same reference and
// zoom, up to date-resolution rounding.
func DateFromPixel(pixels float64, reference time.Time, z ZoomLevel) time.Time {
	days := pixels / PixelsPerDay(z)
	return reference.Add(time.Duration(days * hoursPerDay * float64(time.Hour)))
}

// EventWidth returns the pixel width of an event. A nil end marks a point
// event, which gets the zoom's minimum width; duration events never shrink
// below that floor either.
func EventWidth(start time.Time, end *time.Time, z ZoomLevel) float64 {
	min := MinEventWidth(z)
	if end == nil {
		return min
	}
	w := daysBetween(start, *end) * PixelsPerDay(z)
	if w < min {
		return min
	}
	return w
}
