// Package timeslot holds the static teaching-period catalog: the mapping from
// slot codes such as M1 or N2 to their canonical clock times, and the weekday
// digit convention used by the consolidated schedule notation.
package timeslot

import (
	"fmt"
	"timetable-service/internal/pkg/exceptions"
)

// DayPart is the letter band of a slot code: M morning, T afternoon, N evening.
type DayPart byte

const (
	DayPartMorning   DayPart = 'M'
	DayPartAfternoon DayPart = 'T'
	DayPartEvening   DayPart = 'N'
)

func (p DayPart) Valid() bool {
	return p == DayPartMorning || p == DayPartAfternoon || p == DayPartEvening
}

// MaxOrdinal is the highest slot ordinal the catalog defines for the part.
func (p DayPart) MaxOrdinal() int {
	switch p {
	case DayPartMorning, DayPartAfternoon:
		return 6
	case DayPartEvening:
		return 4
	default:
		return 0
	}
}

// Order ranks day parts chronologically, M before T before N.
func (p DayPart) Order() int {
	switch p {
	case DayPartMorning:
		return 0
	case DayPartAfternoon:
		return 1
	case DayPartEvening:
		return 2
	default:
		return 3
	}
}

// SlotCode identifies one fixed 50-minute teaching period, e.g. "T3".
type SlotCode string

func (c SlotCode) Part() DayPart {
	if len(c) == 0 {
		return 0
	}
	return DayPart(c[0])
}

func (c SlotCode) Ordinal() int {
	if len(c) != 2 || c[1] < '0' || c[1] > '9' {
		return 0
	}
	return int(c[1] - '0')
}

// ParseSlotCode validates s against the catalog.
func ParseSlotCode(s string) (SlotCode, error) {
	code := SlotCode(s)
	if _, ok := catalog[code]; !ok {
		return "", exceptions.ErrUnknownSlotCode(s)
	}
	return code, nil
}

// SlotTime is the canonical start and end of a slot, in minutes from midnight.
type SlotTime struct {
	StartMinute int
	EndMinute   int
}

func (t SlotTime) Start() string {
	return fmt.Sprintf("%02d:%02d", t.StartMinute/60, t.StartMinute%60)
}

func (t SlotTime) End() string {
	return fmt.Sprintf("%02d:%02d", t.EndMinute/60, t.EndMinute%60)
}

// SlotMinutes is the fixed length of every teaching period.
const SlotMinutes = 50

func hm(hour, minute int) int {
	return hour*60 + minute
}

// The catalog is fixed: no two slot codes share a canonical time, and the set
// of valid codes never changes at runtime.
var catalog = map[SlotCode]SlotTime{
	"M1": {hm(7, 0), hm(7, 50)},
	"M2": {hm(7, 50), hm(8, 40)},
	"M3": {hm(8, 50), hm(9, 40)},
	"M4": {hm(9, 40), hm(10, 30)},
	"M5": {hm(10, 40), hm(11, 30)},
	"M6": {hm(11, 30), hm(12, 20)},

	"T1": {hm(13, 0), hm(13, 50)},
	"T2": {hm(13, 50), hm(14, 40)},
	"T3": {hm(14, 50), hm(15, 40)},
	"T4": {hm(15, 40), hm(16, 30)},
	"T5": {hm(16, 40), hm(17, 30)},
	"T6": {hm(17, 30), hm(18, 20)},

	"N1": {hm(18, 30), hm(19, 20)},
	"N2": {hm(19, 20), hm(20, 10)},
	"N3": {hm(20, 20), hm(21, 10)},
	"N4": {hm(21, 10), hm(22, 0)},
}

// SlotTimeOf resolves a slot code to its canonical clock times.
func SlotTimeOf(code SlotCode) (SlotTime, error) {
	t, ok := catalog[code]
	if !ok {
		return SlotTime{}, exceptions.ErrUnknownSlotCode(string(code))
	}
	return t, nil
}

// Overlaps reports half-open interval overlap on minutes from midnight.
// Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
