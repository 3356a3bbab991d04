package contracts

import (
	"context"
	"timetable-service/internal/pkg/dto/responses"
)

// InstructorBookingClient retrieves an instructor's existing bookings from
// the timetable API, one page at a time.
type InstructorBookingClient interface {
	FindBookingsByInstructorID(ctx context.Context, instructorID string, page, pageSize int) (*responses.BookingPage, error)
}

// SectionBookingClient retrieves a class section's existing bookings from
// the timetable API, one page at a time.
type SectionBookingClient interface {
	FindBookingsBySectionID(ctx context.Context, sectionID string, page, pageSize int) (*responses.BookingPage, error)
}

// RoomScheduleClient retrieves a room's occupancy. Rooms are served as one
// aggregated weekly grid rather than paginated booking lists.
type RoomScheduleClient interface {
	FindWeeklyGridByRoomID(ctx context.Context, roomID string) (*responses.RoomWeeklyGrid, error)
}
