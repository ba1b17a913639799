// Package derive computes read-only views over a document: progress ratios,
// filtered/sorted task boards, dashboard statistics, and calendar
// projections. Everything is recomputed on demand; nothing is cached.
package derive

import "time"

const dayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD key as a local calendar day (midnight).
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dayLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func DayKey(t time.Time) string { return t.Format(dayLayout) }

// StripTime truncates to midnight, keeping the location.
func StripTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isToday(day string, now time.Time) bool {
	t, ok := ParseDay(day)
	if !ok {
		return false
	}
	return t.Equal(StripTime(now.In(t.Location())))
}

func isOverdue(day string, now time.Time) bool {
	t, ok := ParseDay(day)
	if !ok {
		return false
	}
	return t.Before(StripTime(now.In(t.Location())))
}

func isUpcoming(day string, now time.Time) bool {
	t, ok := ParseDay(day)
	if !ok {
		return false
	}
	return t.After(StripTime(now.In(t.Location())))
}
