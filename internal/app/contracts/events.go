package contracts

import (
	"context"
	"time"
)

// ScheduleCheckedEvent is published after every completed conflict check so
// downstream services can react to timetable changes.
type ScheduleCheckedEvent struct {
	EventID       string    `json:"event_id"`
	CheckRunID    string    `json:"check_run_id,omitempty"`
	InstructorID  string    `json:"instructor_id,omitempty"`
	RoomID        string    `json:"room_id,omitempty"`
	SectionID     string    `json:"section_id,omitempty"`
	SlotCount     int       `json:"slot_count"`
	ConflictCount int       `json:"conflict_count"`
	CheckedAt     time.Time `json:"checked_at"`
}

// ProposalReadyEvent is published when the optimizer returns a booking
// proposal and its conflict evaluation has completed.
type ProposalReadyEvent struct {
	EventID       string    `json:"event_id"`
	CourseID      string    `json:"course_id"`
	Pattern       string    `json:"pattern"`
	ConflictCount int       `json:"conflict_count"`
	ProposedAt    time.Time `json:"proposed_at"`
}

type EventPublisher interface {
	PublishScheduleChecked(ctx context.Context, event ScheduleCheckedEvent) error
	PublishProposalReady(ctx context.Context, event ProposalReadyEvent) error
}
