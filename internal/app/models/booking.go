package models

import (
	"timetable-service/internal/pkg/timeslot"
)

// ResourceKind is the dimension a booking occupies: instructor, room or
// class section. The three dimensions are checked independently.
type ResourceKind string

const (
	ResourceKindInstructor ResourceKind = "INSTRUCTOR"
	ResourceKindRoom       ResourceKind = "ROOM"
	ResourceKindSection    ResourceKind = "SECTION"
)

// Booking is the unit the conflict detector reasons over: a recurring weekly
// occupation of one resource. Only the weekday and the clock interval matter
// for overlap; clock times are minutes from midnight.
type Booking struct {
	ResourceKind ResourceKind
	ResourceID   string
	Weekday      timeslot.WeekdayCode
	StartMinute  int
	EndMinute    int
}
