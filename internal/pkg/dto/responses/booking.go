package responses

// Booking is the timetable API's wire shape for one recurring weekly booking.
// Weekday uses the notation convention, 1=Sunday through 7=Saturday. Times
// are clock times in "15:04" form; any date the backend stores alongside them
// is irrelevant for overlap comparison.
type Booking struct {
	ID         string `json:"id"`
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name,omitempty"`
	Weekday    int    `json:"weekday"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// BookingPage is the paginated envelope for instructor and section bookings.
type BookingPage struct {
	Items    []Booking `json:"items"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Total    int       `json:"total"`
}

// RoomWeeklyGrid is the aggregated weekly occupancy of one room: weekday
// digit -> slot code -> booking, with null cells for free slots.
type RoomWeeklyGrid struct {
	RoomID string                         `json:"room_id"`
	Grid   map[string]map[string]*Booking `json:"grid"`
}
