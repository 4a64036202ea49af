package feedback

import "time"

// DateOnly truncates t to midnight UTC of its own calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Selectable reports whether the scheduling date picker offers day: weekdays
// from today onwards.
func Selectable(day, today time.Time) bool {
	d := DateOnly(day)
	if d.Before(DateOnly(today)) {
		return false
	}
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

type CalendarDay struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Selectable bool   `json:"selectable"`
}

// Month returns every day of the given month with its picker state.
func Month(year int, month time.Month, today time.Time) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]CalendarDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Date:       d.Format("2006-01-02"),
			Weekday:    d.Weekday().String(),
			Selectable: Selectable(d, today),
		})
	}
	return days
}
