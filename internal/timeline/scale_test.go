package timeline

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPixelsPerDay(t *testing.T) {
	tests := []struct {
		zoom ZoomLevel
		want float64
	}{
		{ZoomYear, 0.1},
		{ZoomMonth, 3.0},
		{ZoomWeek, 50.0},
		{ZoomDay, 800.0},
	}

	for _, tt := range tests {
		t.Run(tt.zoom.String(), func(t *testing.T) {
			if got := PixelsPerDay(tt.zoom); got != tt.want {
				t.Errorf("PixelsPerDay(%v) = %v, want %v", tt.zoom, got, tt.want)
			}
		})
	}
}

func TestVisibleDays(t *testing.T) {
	tests := []struct {
		name  string
		zoom  ZoomLevel
		width float64
		want  float64
	}{
		{"month 900px", ZoomMonth, 900, 300},
		{"week 500px", ZoomWeek, 500, 10},
		{"day 800px", ZoomDay, 800, 1},
		{"year 365px", ZoomYear, 365, 3650},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleDays(tt.zoom, tt.width); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("VisibleDays(%v, %v) = %v, want %v", tt.zoom, tt.width, got, tt.want)
			}
		})
	}
}

func TestPixelPosition(t *testing.T) {
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		zoom ZoomLevel
		want float64
	}{
		{"two weeks at month zoom", ref.AddDate(0, 0, 14), ZoomMonth, 42.0},
		{"same day is origin", ref, ZoomWeek, 0},
		{"before reference is negative", ref.AddDate(0, 0, -10), ZoomMonth, -30.0},
		{"half day at day zoom", ref.Add(12 * time.Hour), ZoomDay, 400.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelPosition(tt.date, ref, tt.zoom); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("PixelPosition(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

// TestDateFromPixelRoundTrip checks PixelPosition and DateFromPixel are exact
// inverses within date resolution, over randomized dates at every zoom.
func TestDateFromPixelRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ref := time.Date(2020, 6, 15, 8, 30, 0, 0, time.UTC)
	zooms := []ZoomLevel{ZoomYear, ZoomMonth, ZoomWeek, ZoomDay}

	for i := 0; i < 200; i++ {
		// Anywhere within +/- ~27 years of the reference, second precision.
		offset := time.Duration(rng.Int63n(2*86400*10000)-86400*10000) * time.Second
		d := ref.Add(offset)
		for _, z := range zooms {
			px := PixelPosition(d, ref, z)
			got := DateFromPixel(px, ref, z)
			if diff := got.Sub(d); diff < -time.Second || diff > time.Second {
				t.Fatalf("round trip at %v: %v -> %vpx -> %v (off by %v)", z, d, px, got, diff)
			}
		}
	}
}

func TestEventWidth(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tenDays := start.AddDate(0, 0, 10)
	oneHour := start.Add(time.Hour)

	tests := []struct {
		name  string
		start time.Time
		end   *time.Time
		zoom  ZoomLevel
		want  float64
	}{
		{"point event gets minimum", start, nil, ZoomMonth, 4.0},
		{"ten days at month zoom", start, &tenDays, ZoomMonth, 30.0},
		{"short duration clamps to minimum", start, &oneHour, ZoomMonth, 4.0},
		{"ten days at year zoom clamps", start, &tenDays, ZoomYear, 2.0},
		{"one hour at day zoom exceeds minimum", start, &oneHour, ZoomDay, 800.0 / 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EventWidth(tt.start, tt.end, tt.zoom); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("EventWidth = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestEventWidthFloor checks the width floor holds for arbitrary durations.
func TestEventWidthFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		end := start.Add(time.Duration(rng.Int63n(int64(90 * 24 * time.Hour))))
		for _, z := range []ZoomLevel{ZoomYear, ZoomMonth, ZoomWeek, ZoomDay} {
			if got := EventWidth(start, &end, z); got < MinEventWidth(z) {
				t.Fatalf("EventWidth(%v, %v, %v) = %v below floor %v", start, end, z, got, MinEventWidth(z))
			}
		}
	}
}

func TestGridInterval(t *testing.T) {
	tests := []struct {
		zoom ZoomLevel
		want float64
	}{
		{ZoomYear, 365},
		{ZoomMonth, 30},
		{ZoomWeek, 7},
		{ZoomDay, 1},
	}

	for _, tt := range tests {
		if got := GridInterval(tt.zoom); got != tt.want {
			t.Errorf("GridInterval(%v) = %v, want %v", tt.zoom, got, tt.want)
		}
	}
}

func TestZoomStepping(t *testing.T) {
	tests := []struct {
		name    string
		zoom    ZoomLevel
		wantIn  ZoomLevel
		wantOut ZoomLevel
		canIn   bool
		canOut  bool
	}{
		{"year", ZoomYear, ZoomMonth, ZoomYear, true, false},
		{"month", ZoomMonth, ZoomWeek, ZoomYear, true, true},
		{"week", ZoomWeek, ZoomDay, ZoomMonth, true, true},
		{"day", ZoomDay, ZoomDay, ZoomWeek, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ZoomIn(tt.zoom); got != tt.wantIn {
				t.Errorf("ZoomIn(%v) = %v, want %v", tt.zoom, got, tt.wantIn)
			}
			if got := ZoomOut(tt.zoom); got != tt.wantOut {
				t.Errorf("ZoomOut(%v) = %v, want %v", tt.zoom, got, tt.wantOut)
			}
			if got := CanZoomIn(tt.zoom); got != tt.canIn {
				t.Errorf("CanZoomIn(%v) = %v, want %v", tt.zoom, got, tt.canIn)
			}
			if got := CanZoomOut(tt.zoom); got != tt.canOut {
				t.Errorf("CanZoomOut(%v) = %v, want %v", tt.zoom, got, tt.canOut)
			}
		})
	}
}

func TestParseZoomLevel(t *testing.T) {
	tests := []struct {
		in   string
		want ZoomLevel
	}{
		{"year", ZoomYear},
		{"month", ZoomMonth},
		{"week", ZoomWeek},
		{"day", ZoomDay},
		{"bogus", ZoomMonth},
		{"", ZoomMonth},
	}

	for _, tt := range tests {
		if got := ParseZoomLevel(tt.in); got != tt.want {
			t.Errorf("ParseZoomLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
