package constvars

// Resource names of the academic timetable API this service consumes.
const (
	TimetableResourceInstructor = "Instructor"
	TimetableResourceSection    = "ClassSection"
	TimetableResourceRoom       = "Room"
	TimetableResourceProposal   = "BookingProposal"
)

// Paginated booking retrieval bounds. The page cap is a safety bound against
// a backend that never reports a short page; it must stay in place.
const (
	BookingsPageSize    = 20
	BookingsMaxPages    = 50
	BookingTimeLayout   = "15:04"
	CourseDateLayout    = "2006-01-02"
	RoomGridCacheKeyFmt = "room-grid:%s"
)

// Conflict kinds, one per non-empty combination of overlapping dimensions.
const (
	ConflictInstructor        = "INSTRUCTOR"
	ConflictRoom              = "ROOM"
	ConflictSection           = "SECTION"
	ConflictInstructorRoom    = "INSTRUCTOR_ROOM"
	ConflictInstructorSection = "INSTRUCTOR_SECTION"
	ConflictRoomSection       = "ROOM_SECTION"
	ConflictAll               = "ALL"
)

// Queue names for schedule integration events.
const (
	QueueScheduleChecked       = "schedule.checked"
	QueueScheduleProposalReady = "schedule.proposal.ready"
)
