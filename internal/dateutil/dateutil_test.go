package dateutil

import (
	"testing"
	"time"
)

func TestParseFlexibleDateAbsolute(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-10", time.Date(2024, 3, 10, 0, 0, 0, 0, loc)},
		{"2024/03/10", time.Date(2024, 3, 10, 0, 0, 0, 0, loc)},
		{"Mar 10, 2024", time.Date(2024, 3, 10, 0, 0, 0, 0, loc)},
		{"10 Mar 2024", time.Date(2024, 3, 10, 0, 0, 0, 0, loc)},
		{"2024-03-10 14:30", time.Date(2024, 3, 10, 14, 30, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFlexibleDate(tt.in, loc)
			if err != nil {
				t.Fatalf("ParseFlexibleDate(%q): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseFlexibleDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFlexibleDateRelative(t *testing.T) {
	loc := time.UTC
	now := time.Now().In(loc)

	tests := []struct {
		in       string
		wantDate time.Time // compared at day granularity
	}{
		{"today", now},
		{"yesterday", now.AddDate(0, 0, -1)},
		{"tomorrow", now.AddDate(0, 0, 1)},
		{"2 days", now.AddDate(0, 0, -2)},
		{"1 week", now.AddDate(0, 0, -7)},
		{"2 weeks ago", now.AddDate(0, 0, -14)},
		{"3d ago", now.AddDate(0, 0, -3)},
		{"last week", now.AddDate(0, 0, -7)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFlexibleDate(tt.in, loc)
			if err != nil {
				t.Fatalf("ParseFlexibleDate(%q): %v", tt.in, err)
			}
			gy, gm, gd := got.Date()
			wy, wm, wd := tt.wantDate.Date()
			if gy != wy || gm != wm || gd != wd {
				t.Errorf("ParseFlexibleDate(%q) = %v, want day %04d-%02d-%02d", tt.in, got, wy, wm, wd)
			}
		})
	}
}

func TestParseFlexibleDateErrors(t *testing.T) {
	for _, in := range []string{"", "not a date", "13 parsecs ago"} {
		if _, err := ParseFlexibleDate(in, time.UTC); err == nil {
			t.Errorf("ParseFlexibleDate(%q) should fail", in)
		}
	}
}

func TestGetDateRange(t *testing.T) {
	loc := time.UTC

	start, end, err := GetDateRange("today", loc)
	if err != nil {
		t.Fatalf("GetDateRange(today): %v", err)
	}
	if d := end.Sub(start); d != 24*time.Hour {
		t.Errorf("today range = %v, want 24h", d)
	}

	if _, _, err := GetDateRange("fortnight", loc); err == nil {
		t.Error("unknown preset should fail")
	}
}
