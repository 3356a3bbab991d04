package responses

type PatternEncode struct {
	Pattern string `json:"pattern"`
}

type PatternDay struct {
	Weekday     int      `json:"weekday"`
	Slots       []string `json:"slots"`
	Occurrences int      `json:"occurrences"`
}

type PatternDecode struct {
	Pattern  string         `json:"pattern"`
	Weekdays []int          `json:"weekdays"`
	Days     []PatternDay   `json:"days"`
	Bookings []ProposedSlot `json:"bookings"`
}

type ProgressProjection struct {
	OccurrencesSoFar int     `json:"occurrences_so_far"`
	TotalRequired    int     `json:"total_required,omitempty"`
	PercentComplete  float64 `json:"percent_complete,omitempty"`
}

type CompletionForecast struct {
	CompletionDate      string `json:"completion_date"`
	WeeksRemaining      int    `json:"weeks_remaining"`
	OccurrencesPerWeek  int    `json:"occurrences_per_week"`
	OccurrencesRemained int    `json:"occurrences_remaining"`
}

// SlotConflict classifies one candidate slot. Candidates that stay free are
// simply absent from the list.
type SlotConflict struct {
	Weekday int    `json:"weekday"`
	Slot    string `json:"slot"`
	Kind    string `json:"kind"`
}

type ConflictCheck struct {
	Conflicts []SlotConflict `json:"conflicts"`
	Warnings  []string       `json:"warnings,omitempty"`
}

type BookingProposal struct {
	CourseID  string         `json:"course_id"`
	Pattern   string         `json:"pattern"`
	Bookings  []ProposedSlot `json:"bookings"`
	Conflicts []SlotConflict `json:"conflicts"`
	Warnings  []string       `json:"warnings,omitempty"`
}

type ProposedSlot struct {
	Weekday int    `json:"weekday"`
	Slot    string `json:"slot"`
}

type CheckRun struct {
	ID           string         `json:"id"`
	InstructorID string         `json:"instructor_id,omitempty"`
	RoomID       string         `json:"room_id,omitempty"`
	SectionID    string         `json:"section_id,omitempty"`
	Slots        []ProposedSlot `json:"slots"`
	Conflicts    []SlotConflict `json:"conflicts"`
	Warnings     []string       `json:"warnings,omitempty"`
	CreatedAt    string         `json:"created_at"`
}
