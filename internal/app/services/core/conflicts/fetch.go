package conflicts

import (
	"context"
	"strconv"
	"time"

	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/timeslot"
)

// pageFetchFunc fetches one page of a booking listing and reports whether it
// was the final page.
type pageFetchFunc func(ctx context.Context, page int) (items []responses.Booking, last bool, err error)

// fetchAllPages drains a paginated booking listing. It stops when a page
// reports itself final or when the hard page cap is reached, whichever comes
// first. The cap keeps a backend that always returns full pages from turning
// the check into an unbounded crawl; hitting it is reported so the caller can
// surface a truncation warning. A canceled context aborts between pages.
func fetchAllPages(ctx context.Context, kind models.ResourceKind, resourceID string, fetch pageFetchFunc) ([]models.Booking, bool, error) {
	var all []models.Booking
	for page := 1; page <= constvars.BookingsMaxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		items, last, err := fetch(ctx, page)
		if err != nil {
			return nil, false, err
		}
		all = append(all, mapBookings(kind, resourceID, items)...)
		if last {
			return all, false, nil
		}
	}
	return all, true, nil
}

// mapBookings converts wire bookings into comparable occupancy intervals.
// Items with an unknown weekday or an unparseable clock time cannot take part
// in overlap comparison and are dropped.
func mapBookings(kind models.ResourceKind, resourceID string, items []responses.Booking) []models.Booking {
	bookings := make([]models.Booking, 0, len(items))
	for _, item := range items {
		weekday := timeslot.WeekdayCode(item.Weekday)
		if !weekday.Valid() {
			continue
		}
		start, err := parseClock(item.StartTime)
		if err != nil {
			continue
		}
		end, err := parseClock(item.EndTime)
		if err != nil {
			continue
		}
		bookings = append(bookings, models.Booking{
			ResourceKind: kind,
			ResourceID:   resourceID,
			Weekday:      weekday,
			StartMinute:  start,
			EndMinute:    end,
		})
	}
	return bookings
}

// flattenRoomGrid turns the day-by-slot grid into a flat occupancy list.
// Cell clock times win when present; otherwise the slot code's canonical
// times are used. Cells keyed by an unknown weekday or slot are skipped.
func flattenRoomGrid(roomID string, grid *responses.RoomWeeklyGrid) []models.Booking {
	var bookings []models.Booking
	for dayKey, row := range grid.Grid {
		digit, err := strconv.Atoi(dayKey)
		if err != nil {
			continue
		}
		weekday := timeslot.WeekdayCode(digit)
		if !weekday.Valid() {
			continue
		}
		for slotKey, cell := range row {
			if cell == nil {
				continue
			}
			start, end, ok := cellInterval(slotKey, cell)
			if !ok {
				continue
			}
			bookings = append(bookings, models.Booking{
				ResourceKind: models.ResourceKindRoom,
				ResourceID:   roomID,
				Weekday:      weekday,
				StartMinute:  start,
				EndMinute:    end,
			})
		}
	}
	return bookings
}

func cellInterval(slotKey string, cell *responses.Booking) (start, end int, ok bool) {
	if cell.StartTime != "" && cell.EndTime != "" {
		s, errS := parseClock(cell.StartTime)
		e, errE := parseClock(cell.EndTime)
		if errS == nil && errE == nil {
			return s, e, true
		}
	}
	code, err := timeslot.ParseSlotCode(slotKey)
	if err != nil {
		return 0, 0, false
	}
	times, err := timeslot.SlotTimeOf(code)
	if err != nil {
		return 0, 0, false
	}
	return times.StartMinute, times.EndMinute, true
}

// parseClock converts an "15:04" clock string to minutes from midnight.
func parseClock(clock string) (int, error) {
	t, err := time.Parse(constvars.BookingTimeLayout, clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
