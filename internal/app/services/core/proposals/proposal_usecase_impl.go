package proposals

import (
	"context"
	"time"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/pattern"
	"timetable-service/internal/pkg/timeslot"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// proposalUsecase asks the external optimizer for a weekly booking layout and
// immediately evaluates the proposal against existing bookings, so the caller
// receives the proposed slots together with their conflict classification and
// the consolidated pattern string.
type proposalUsecase struct {
	optimizerClient contracts.OptimizerClient
	conflictUsecase contracts.ConflictUsecase
	checkRunRepo    contracts.CheckRunRepository
	publisher       contracts.EventPublisher
	log             *zap.Logger
}

func NewProposalUsecase(
	optimizerClient contracts.OptimizerClient,
	conflictUsecase contracts.ConflictUsecase,
	checkRunRepo contracts.CheckRunRepository,
	publisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.ProposalUsecase {
	return &proposalUsecase{
		optimizerClient: optimizerClient,
		conflictUsecase: conflictUsecase,
		checkRunRepo:    checkRunRepo,
		publisher:       publisher,
		log:             logger,
	}
}

func (u *proposalUsecase) Propose(ctx context.Context, request *requests.BookingProposal) (*responses.BookingProposal, error) {
	proposed, err := u.optimizerClient.ProposeBookings(ctx, request)
	if err != nil {
		return nil, err
	}

	bookings := make([]pattern.WeeklyBooking, 0, len(proposed))
	slots := make([]requests.CandidateSlot, 0, len(proposed))
	for _, p := range proposed {
		bookings = append(bookings, pattern.WeeklyBooking{
			Weekday: timeslot.WeekdayCode(p.Weekday),
			Slot:    timeslot.SlotCode(p.Slot),
		})
		slots = append(slots, requests.CandidateSlot{Weekday: p.Weekday, Slot: p.Slot})
	}

	encoded, err := pattern.Encode(bookings)
	if err != nil {
		return nil, err
	}

	check := &requests.ConflictCheck{
		InstructorID: request.InstructorID,
		RoomID:       request.RoomID,
		SectionID:    request.SectionID,
		Slots:        slots,
	}
	evaluation := &responses.ConflictCheck{}
	if len(slots) > 0 {
		evaluation, err = u.conflictUsecase.Evaluate(ctx, check)
		if err != nil {
			return nil, err
		}
	}

	u.recordRun(check, evaluation)
	u.publishReady(request.CourseID, encoded, len(evaluation.Conflicts))

	return &responses.BookingProposal{
		CourseID:  request.CourseID,
		Pattern:   encoded,
		Bookings:  proposed,
		Conflicts: evaluation.Conflicts,
		Warnings:  evaluation.Warnings,
	}, nil
}

func (u *proposalUsecase) recordRun(check *requests.ConflictCheck, evaluation *responses.ConflictCheck) {
	run := &models.CheckRun{
		Source:       models.CheckRunSourceProposal,
		InstructorID: check.InstructorID,
		RoomID:       check.RoomID,
		SectionID:    check.SectionID,
		Slots:        make([]models.CheckRunSlot, 0, len(check.Slots)),
		Conflicts:    make([]models.CheckRunConflict, 0, len(evaluation.Conflicts)),
		Warnings:     evaluation.Warnings,
		CreatedAt:    time.Now().UTC(),
	}
	for _, s := range check.Slots {
		run.Slots = append(run.Slots, models.CheckRunSlot{Weekday: s.Weekday, Slot: s.Slot})
	}
	for _, c := range evaluation.Conflicts {
		run.Conflicts = append(run.Conflicts, models.CheckRunConflict{Weekday: c.Weekday, Slot: c.Slot, Kind: c.Kind})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := u.checkRunRepo.Insert(ctx, run); err != nil {
		u.log.Warn("failed to record proposal check run", zap.Error(err))
	}
}

func (u *proposalUsecase) publishReady(courseID, encoded string, conflictCount int) {
	event := contracts.ProposalReadyEvent{
		EventID:       uuid.New().String(),
		CourseID:      courseID,
		Pattern:       encoded,
		ConflictCount: conflictCount,
		ProposedAt:    time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := u.publisher.PublishProposalReady(ctx, event); err != nil {
		u.log.Warn("failed to publish schedule.proposal.ready event", zap.Error(err))
	}
}
