package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseFlexibleDate attempts to parse various date formats and natural
// language ("yesterday", "2 weeks ago", "2024-03-10 14:00", ...).
func ParseFlexibleDate(input string, loc *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date input")
	}
	input = strings.ToLower(raw)

	now := time.Now().In(loc)

	switch input {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	case "yesterday":
		y := now.AddDate(0, 0, -1)
		return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, loc), nil
	case "tomorrow":
		tm := now.AddDate(0, 0, 1)
		return time.Date(tm.Year(), tm.Month(), tm.Day(), 0, 0, 0, 0, loc), nil
	case "now":
		return now, nil
	}

	// "2h ago" and "2 weeks ago" both mean that far in the past.
	if strings.HasSuffix(input, " ago") {
		rest := strings.TrimSuffix(input, " ago")
		if d, err := parseDuration(rest); err == nil {
			return now.Add(-d), nil
		}
		if t, ok := parseUnitsBack(rest, now); ok {
			return t, nil
		}
	}

	if strings.HasPrefix(input, "last ") {
		switch strings.TrimPrefix(input, "last ") {
		case "week":
			return now.AddDate(0, 0, -7), nil
		case "month":
			return now.AddDate(0, -1, 0), nil
		case "year":
			return now.AddDate(-1, 0, 0), nil
		case "day":
			return now.AddDate(0, 0, -1), nil
		}
	}

	// "N days/weeks/months/years" means that far in the past.
	if t, ok := parseUnitsBack(input, now); ok {
		return t, nil
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"Jan 2, 2006",
		"2 Jan 2006",
		"January 2, 2006",
		"2006-01-02 15:04",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}

	// Month names are case-sensitive in time.Parse, so parse the raw input.
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, raw, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", raw)
}

var unitsBackRE = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks|month|months|year|years)$`)

// parseUnitsBack resolves "N days/weeks/months/years" to that far before now.
func parseUnitsBack(input string, now time.Time) (time.Time, bool) {
	matches := unitsBackRE.FindStringSubmatch(input)
	if matches == nil {
		return time.Time{}, false
	}
	num, _ := strconv.Atoi(matches[1])
	switch matches[2] {
	case "day", "days":
		return now.AddDate(0, 0, -num), true
	case "week", "weeks":
		return now.AddDate(0, 0, -7*num), true
	case "month", "months":
		return now.AddDate(0, -num, 0), true
	case "year", "years":
		return now.AddDate(-num, 0, 0), true
	}
	return time.Time{}, false
}

// parseDuration parses simple duration strings like "2h", "30m", "1d".
func parseDuration(input string) (time.Duration, error) {
	re := regexp.MustCompile(`^(\d+)([smhdw])$`)
	matches := re.FindStringSubmatch(input)
	if matches == nil {
		return 0, fmt.Errorf("invalid duration format: %s", input)
	}

	num, _ := strconv.Atoi(matches[1])
	switch matches[2] {
	case "s":
		return time.Duration(num) * time.Second, nil
	case "m":
		return time.Duration(num) * time.Minute, nil
	case "h":
		return time.Duration(num) * time.Hour, nil
	case "d":
		return time.Duration(num) * 24 * time.Hour, nil
	case "w":
		return time.Duration(num) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", matches[2])
	}
}

// GetDateRange returns start and end time for common presets.
func GetDateRange(preset string, loc *time.Location) (time.Time, time.Time, error) {
	now := time.Now().In(loc)

	switch strings.ToLower(preset) {
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		return start, start.Add(24 * time.Hour), nil
	case "yesterday":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).Add(-24 * time.Hour)
		return start, start.Add(24 * time.Hour), nil
	case "week":
		weekday := int(now.Weekday())
		if weekday == 0 { // Sunday
			weekday = 7
		}
		start := now.AddDate(0, 0, -(weekday - 1))
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		return start, start.Add(7 * 24 * time.Hour), nil
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0), nil
	case "year":
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(1, 0, 0), nil
	case "last30days", "last-30-days":
		start := now.AddDate(0, 0, -30)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		return start, now, nil
	case "last365days", "last-365-days":
		start := now.AddDate(0, 0, -365)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		return start, now, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown date preset: %s", preset)
	}
}
