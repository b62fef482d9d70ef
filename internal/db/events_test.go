package db

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbh, err := OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return dbh
}

func TestAddAndGetEvent(t *testing.T) {
	dbh := openTestDB(t)
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	id, err := AddEvent(dbh, "vacation", "travel", start, &end)
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	ev, err := GetEvent(dbh, id)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if ev.Title != "vacation" || ev.Category != "travel" {
		t.Errorf("got %q/%q, want vacation/travel", ev.Title, ev.Category)
	}
	if !ev.Start.Equal(start) {
		t.Errorf("Start = %v, want %v", ev.Start, start)
	}
	if ev.End == nil || !ev.End.Equal(end) {
		t.Errorf("End = %v, want %v", ev.End, end)
	}
}

func TestAddPointEvent(t *testing.T) {
	dbh := openTestDB(t)
	start := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	id, err := AddEvent(dbh, "dentist", "health", start, nil)
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	ev, err := GetEvent(dbh, id)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if ev.End != nil {
		t.Errorf("point event has End = %v, want nil", *ev.End)
	}
	if !ev.IsPoint() {
		t.Error("IsPoint() = false, want true")
	}
}

func TestEventsBetweenIntersection(t *testing.T) {
	dbh := openTestDB(t)
	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	}
	durEnd := day(12)

	seed := []struct {
		title string
		start time.Time
		end   *time.Time
	}{
		{"before window", day(1), nil},
		{"spans window start", day(8), &durEnd},
		{"inside window", day(15), nil},
		{"after window", day(25), nil},
	}
	for _, s := range seed {
		if _, err := AddEvent(dbh, s.title, "note", s.start, s.end); err != nil {
			t.Fatalf("AddEvent(%s): %v", s.title, err)
		}
	}

	events, err := EventsBetween(dbh, day(10), day(20))
	if err != nil {
		t.Fatalf("EventsBetween: %v", err)
	}

	var titles []string
	for _, ev := range events {
		titles = append(titles, ev.Title)
	}
	want := []string{"spans window start", "inside window"}
	if len(titles) != len(want) {
		t.Fatalf("got %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestDeleteEvent(t *testing.T) {
	dbh := openTestDB(t)
	id, err := AddEvent(dbh, "oops", "note", time.Now().UTC(), nil)
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if err := DeleteEvent(dbh, id); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if _, err := GetEvent(dbh, id); err == nil {
		t.Error("GetEvent after delete should fail")
	}
}

func TestCategoryCounts(t *testing.T) {
	dbh := openTestDB(t)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i, cat := range []string{"health", "travel", "health", "work"} {
		if _, err := AddEvent(dbh, "ev", cat, base.AddDate(0, 0, i), nil); err != nil {
			t.Fatalf("AddEvent: %v", err)
		}
	}

	counts, err := CategoryCounts(dbh, base, base.AddDate(0, 0, 30))
	if err != nil {
		t.Fatalf("CategoryCounts: %v", err)
	}
	if counts["health"] != 2 || counts["travel"] != 1 || counts["work"] != 1 {
		t.Errorf("counts = %v, want health:2 travel:1 work:1", counts)
	}
}

func TestEnsureNotesColumnIdempotent(t *testing.T) {
	dbh := openTestDB(t)
	// OpenPath already ran it once; a second run must be a no-op.
	if err := EnsureNotesColumn(dbh); err != nil {
		t.Fatalf("EnsureNotesColumn rerun: %v", err)
	}
}
