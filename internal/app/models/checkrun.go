package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CheckRunSourceManual   = "manual"
	CheckRunSourceProposal = "proposal"
)

// CheckRun records one completed conflict check for later review.
type CheckRun struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Source       string             `bson:"source"`
	InstructorID string             `bson:"instructor_id,omitempty"`
	RoomID       string             `bson:"room_id,omitempty"`
	SectionID    string             `bson:"section_id,omitempty"`
	Slots        []CheckRunSlot     `bson:"slots"`
	Conflicts    []CheckRunConflict `bson:"conflicts"`
	Warnings     []string           `bson:"warnings,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

type CheckRunSlot struct {
	Weekday int    `bson:"weekday"`
	Slot    string `bson:"slot"`
}

type CheckRunConflict struct {
	Weekday int    `bson:"weekday"`
	Slot    string `bson:"slot"`
	Kind    string `bson:"kind"`
}
