package checkruns

import (
	"context"
	"time"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type checkRunUsecase struct {
	checkRunRepo contracts.CheckRunRepository
	log          *zap.Logger
}

func NewCheckRunUsecase(checkRunRepo contracts.CheckRunRepository, logger *zap.Logger) contracts.CheckRunUsecase {
	return &checkRunUsecase{
		checkRunRepo: checkRunRepo,
		log:          logger,
	}
}

func (u *checkRunUsecase) FindRecent(ctx context.Context, page, pageSize int) ([]responses.CheckRun, int, error) {
	runs, total, err := u.checkRunRepo.FindRecent(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.CheckRun, 0, len(runs))
	for _, run := range runs {
		result = append(result, buildCheckRunResponse(run))
	}
	return result, total, nil
}

func buildCheckRunResponse(run models.CheckRun) responses.CheckRun {
	out := responses.CheckRun{
		ID:           run.ID.Hex(),
		InstructorID: run.InstructorID,
		RoomID:       run.RoomID,
		SectionID:    run.SectionID,
		Slots:        make([]responses.ProposedSlot, 0, len(run.Slots)),
		Conflicts:    make([]responses.SlotConflict, 0, len(run.Conflicts)),
		Warnings:     run.Warnings,
		CreatedAt:    run.CreatedAt.Format(time.RFC3339),
	}
	for _, s := range run.Slots {
		out.Slots = append(out.Slots, responses.ProposedSlot{Weekday: s.Weekday, Slot: s.Slot})
	}
	for _, c := range run.Conflicts {
		out.Conflicts = append(out.Conflicts, responses.SlotConflict{Weekday: c.Weekday, Slot: c.Slot, Kind: c.Kind})
	}
	return out
}
