package timeline

// ZoomLevel is a discrete granularity setting controlling pixel-per-day
// density. The four values are the only valid ones; passing anything else to
// the scale functions is a programming error.
type ZoomLevel int

const (
	ZoomYear ZoomLevel = iota
	ZoomMonth
	ZoomWeek
	ZoomDay
)

// String returns the display name of the zoom level.
func (z ZoomLevel) String() string {
	switch z {
	case ZoomYear:
		return "year"
	case ZoomMonth:
		return "month"
	case ZoomWeek:
		return "week"
	case ZoomDay:
		return "day"
	default:
		return "unknown"
	}
}

// ParseZoomLevel maps a config/CLI string to a ZoomLevel. Unknown strings
// fall back to ZoomMonth.
func ParseZoomLevel(s string) ZoomLevel {
	switch s {
	case "year":
		return ZoomYear
	case "week":
		return ZoomWeek
	case "day":
		return ZoomDay
	default:
		return ZoomMonth
	}
}

// ZoomIn returns the next finer zoom level, clamped at ZoomDay.
func ZoomIn(z ZoomLevel) ZoomLevel {
	if z >= ZoomDay {
		return ZoomDay
	}
	return z + 1
}

// ZoomOut returns the next coarser zoom level, clamped at ZoomYear.
func ZoomOut(z ZoomLevel) ZoomLevel {
	if z <= ZoomYear {
		return ZoomYear
	}
	return z - 1
}

// CanZoomIn reports whether ZoomIn would change the level.
func CanZoomIn(z ZoomLevel) bool { return z < ZoomDay }

// CanZoomOut reports whether ZoomOut would change the level.
func CanZoomOut(z ZoomLevel) bool { return z > ZoomYear }
