package conflicts

import (
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/timeslot"
)

// markers records which resource dimensions already occupy a candidate slot.
type markers struct {
	instructor bool
	room       bool
	section    bool
}

func (m markers) count() int {
	n := 0
	if m.instructor {
		n++
	}
	if m.room {
		n++
	}
	if m.section {
		n++
	}
	return n
}

// classify maps the marker combination onto exactly one of the seven
// conflict kinds. The second return is false when the slot is free.
func classify(m markers) (string, bool) {
	switch m.count() {
	case 3:
		return constvars.ConflictAll, true
	case 2:
		if m.instructor && m.room {
			return constvars.ConflictInstructorRoom, true
		}
		if m.instructor && m.section {
			return constvars.ConflictInstructorSection, true
		}
		return constvars.ConflictRoomSection, true
	case 1:
		if m.instructor {
			return constvars.ConflictInstructor, true
		}
		if m.room {
			return constvars.ConflictRoom, true
		}
		return constvars.ConflictSection, true
	default:
		return "", false
	}
}

// occupied reports whether any booking of the dimension collides with the
// candidate interval on the same weekday. Interval comparison is half-open;
// back-to-back slots do not collide.
func occupied(bookings []models.Booking, weekday timeslot.WeekdayCode, startMinute, endMinute int) bool {
	for _, b := range bookings {
		if b.Weekday != weekday {
			continue
		}
		if timeslot.Overlaps(b.StartMinute, b.EndMinute, startMinute, endMinute) {
			return true
		}
	}
	return false
}
