package timeslot

import (
	"time"
	"timetable-service/internal/pkg/exceptions"
)

// WeekdayCode is the notation's weekday digit, 1=Sunday through 7=Saturday.
// It is deliberately distinct from time.Weekday, which is 0-based; every
// conversion between the two goes through this package so the off-by-one
// never leaks into comparisons.
type WeekdayCode int

func (w WeekdayCode) Valid() bool {
	return w >= 1 && w <= 7
}

// IsWeekend reports whether the code falls on Saturday or Sunday.
func (w WeekdayCode) IsWeekend() bool {
	return w == 1 || w == 7
}

// FromTimeWeekday converts a 0-based time.Weekday into a weekday digit.
func FromTimeWeekday(d time.Weekday) WeekdayCode {
	return WeekdayCode(int(d) + 1)
}

// ParseWeekdayDigit validates d as a weekday digit.
func ParseWeekdayDigit(d int) (WeekdayCode, error) {
	w := WeekdayCode(d)
	if !w.Valid() {
		return 0, exceptions.ErrInvalidWeekdayDigit(d)
	}
	return w, nil
}

// ToTimeWeekday converts the digit back to a time.Weekday.
func ToTimeWeekday(w WeekdayCode) (time.Weekday, error) {
	if !w.Valid() {
		return 0, exceptions.ErrInvalidWeekdayDigit(int(w))
	}
	return time.Weekday(int(w) - 1), nil
}
