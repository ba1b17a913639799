package derive

import "time"

// CalendarCell is one real day of the month grid. Leading/trailing slots of
// a week row are nil.
type CalendarCell struct {
	Day int    `json:"day"`
	Key string `json:"key"` // YYYY-MM-DD
}

type CalendarGrid struct {
	MonthLabel string            `json:"monthLabel"`
	Weeks      [][]*CalendarCell `json:"weeks"` // fixed 7-wide, Sunday first
	TodayKey   string            `json:"todayKey"`
}

// Calendar projects the current month as Sunday-first week rows.
func Calendar(now time.Time) CalendarGrid {
	year, month := now.Year(), now.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	startWeekday := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cell := func(day int) *CalendarCell {
		return &CalendarCell{
			Day: day,
			Key: DayKey(time.Date(year, month, day, 0, 0, 0, 0, now.Location())),
		}
	}

	var weeks [][]*CalendarCell
	week := make([]*CalendarCell, 7)
	day := 1
	for i := startWeekday; i < 7 && day <= daysInMonth; i++ {
		week[i] = cell(day)
		day++
	}
	weeks = append(weeks, week)
	for day <= daysInMonth {
		week = make([]*CalendarCell, 7)
		for i := 0; i < 7 && day <= daysInMonth; i++ {
			week[i] = cell(day)
			day++
		}
		weeks = append(weeks, week)
	}

	return CalendarGrid{
		MonthLabel: now.Format("January 2006"),
		Weeks:      weeks,
		TodayKey:   DayKey(now),
	}
}
