package requests

// CandidateSlot is one prospective (weekday, slot) booking.
type CandidateSlot struct {
	Weekday int    `json:"weekday" validate:"required,weekday"`
	Slot    string `json:"slot" validate:"required,slotcode"`
}

type PatternEncode struct {
	Bookings []CandidateSlot `json:"bookings" validate:"required,min=1,dive"`
}

type PatternDecode struct {
	Pattern string `json:"pattern" validate:"required"`
}

type ProgressProjection struct {
	Pattern       string          `json:"pattern"`
	Bookings      []CandidateSlot `json:"bookings,omitempty" validate:"omitempty,dive"`
	StartDate     string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string          `json:"end_date" validate:"required,datetime=2006-01-02"`
	AsOf          string          `json:"as_of" validate:"required,datetime=2006-01-02"`
	TotalRequired int             `json:"total_required" validate:"omitempty,gte=0"`
}

type CompletionForecast struct {
	Pattern           string `json:"pattern" validate:"required"`
	StartDate         string `json:"start_date" validate:"required,datetime=2006-01-02"`
	TotalRequired     int    `json:"total_required" validate:"required,gt=0"`
	OccurrencesLogged int    `json:"occurrences_logged" validate:"omitempty,gte=0"`
}

type ConflictCheck struct {
	InstructorID string          `json:"instructor_id"`
	RoomID       string          `json:"room_id"`
	SectionID    string          `json:"section_id"`
	Slots        []CandidateSlot `json:"slots" validate:"required,min=1,dive"`
}

type BookingProposal struct {
	CourseID     string `json:"course_id" validate:"required"`
	InstructorID string `json:"instructor_id" validate:"required"`
	SectionID    string `json:"section_id" validate:"required"`
	RoomID       string `json:"room_id"`
	WeeklySlots  int    `json:"weekly_slots" validate:"required,gt=0,lte=16"`
}
