package util

import (
	"time"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func IsWeekday(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// IsMonthStart reports whether t is the first weekday of its month.
func IsMonthStart(t time.Time) bool {
	if !IsWeekday(t) {
		return false
	}
	for d := 1; d < t.Day(); d++ {
		if IsWeekday(NewDate(t.Year(), int(t.Month()), d)) {
			return false
		}
	}
	return true
}
