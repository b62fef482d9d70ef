package db

import (
	"database/sql"
	"time"

	"github.com/arvidh/lifeline/internal/timeline"
)

// AddEvent inserts an event and returns its id. A nil end stores a point
// event.
func AddEvent(dbh *sql.DB, title, category string, start time.Time, end *time.Time) (int64, error) {
	var endTS sql.NullString
	if end != nil {
		endTS = sql.NullString{String: end.UTC().Format(time.RFC3339), Valid: true}
	}
	res, err := dbh.Exec(`
		INSERT INTO events (title, category, start_ts, end_ts)
		VALUES (?, ?, ?, ?)
	`, title, category, start.UTC().Format(time.RFC3339), endTS)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetEvent returns one event by id.
func GetEvent(dbh *sql.DB, id int64) (timeline.Event, error) {
	row := dbh.QueryRow(`
		SELECT id, title, category, start_ts, end_ts
		FROM events WHERE id = ?
	`, id)
	return scanEvent(row)
}

// DeleteEvent removes an event by id.
func DeleteEvent(dbh *sql.DB, id int64) error {
	_, err := dbh.Exec(`DELETE FROM events WHERE id = ?`, id)
	return err
}

// EventsBetween returns events whose interval intersects [start, end],
// ordered by start date. Point events are treated as intervals of zero
// length. This is the supply query the layout core assumes: callers
// pre-filter to a coarse window before running a layout pass.
func EventsBetween(dbh *sql.DB, start, end time.Time) ([]timeline.Event, error) {
	rows, err := dbh.Query(`
		SELECT id, title, category, start_ts, end_ts
		FROM events
		WHERE start_ts <= ? AND COALESCE(end_ts, start_ts) >= ?
		ORDER BY start_ts ASC, id ASC
	`, end.UTC().Format(time.RFC3339), start.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []timeline.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// CategoryCounts returns the number of events per category over a window.
func CategoryCounts(dbh *sql.DB, start, end time.Time) (map[string]int, error) {
	rows, err := dbh.Query(`
		SELECT category, COUNT(*)
		FROM events
		WHERE start_ts <= ? AND COALESCE(end_ts, start_ts) >= ?
		GROUP BY category
		ORDER BY category ASC
	`, end.UTC().Format(time.RFC3339), start.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		counts[cat] = n
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (timeline.Event, error) {
	var ev timeline.Event
	var startTS string
	var endTS sql.NullString
	if err := row.Scan(&ev.ID, &ev.Title, &ev.Category, &startTS, &endTS); err != nil {
		return timeline.Event{}, err
	}

	start, err := time.Parse(time.RFC3339Nano, startTS)
	if err != nil {
		return timeline.Event{}, err
	}
	ev.Start = start

	if endTS.Valid {
		end, err := time.Parse(time.RFC3339Nano, endTS.String)
		if err != nil {
			return timeline.Event{}, err
		}
		ev.End = &end
	}
	return ev, nil
}
