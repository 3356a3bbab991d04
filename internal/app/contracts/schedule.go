package contracts

import (
	"context"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
)

type PatternUsecase interface {
	Encode(ctx context.Context, request *requests.PatternEncode) (*responses.PatternEncode, error)
	Decode(ctx context.Context, request *requests.PatternDecode) (*responses.PatternDecode, error)
}

type ProgressUsecase interface {
	Project(ctx context.Context, request *requests.ProgressProjection) (*responses.ProgressProjection, error)
	Forecast(ctx context.Context, request *requests.CompletionForecast) (*responses.CompletionForecast, error)
}

type ConflictUsecase interface {
	// Detect runs the full conflict check, records the run and publishes a
	// schedule.checked event.
	Detect(ctx context.Context, request *requests.ConflictCheck) (*responses.ConflictCheck, error)
	// Evaluate runs the detection engine only, without side effects. Used by
	// the proposal flow, which records and publishes on its own terms.
	Evaluate(ctx context.Context, request *requests.ConflictCheck) (*responses.ConflictCheck, error)
}

type ProposalUsecase interface {
	Propose(ctx context.Context, request *requests.BookingProposal) (*responses.BookingProposal, error)
}

type CheckRunUsecase interface {
	FindRecent(ctx context.Context, page, pageSize int) ([]responses.CheckRun, int, error)
}

// OptimizerClient talks to the external genetic optimization service. The
// service is an opaque endpoint: it receives the booking constraints and
// answers with a proposed weekly booking list.
type OptimizerClient interface {
	ProposeBookings(ctx context.Context, request *requests.BookingProposal) ([]responses.ProposedSlot, error)
}
