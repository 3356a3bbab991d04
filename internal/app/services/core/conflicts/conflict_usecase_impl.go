package conflicts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/timeslot"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// conflictUsecase checks candidate weekly slots against the existing bookings
// of up to three resource dimensions. Dimensions are fetched concurrently and
// independently; a dimension whose fetch fails degrades to a warning instead
// of failing the whole check. Only the newest in-flight check per instance is
// allowed to finish: starting a new one cancels and supersedes the previous.
type conflictUsecase struct {
	instructorClient contracts.InstructorBookingClient
	sectionClient    contracts.SectionBookingClient
	roomClient       contracts.RoomScheduleClient
	checkRunRepo     contracts.CheckRunRepository
	publisher        contracts.EventPublisher
	log              *zap.Logger

	mu         sync.Mutex
	generation uint64
	cancelLast context.CancelFunc
}

func NewConflictUsecase(
	instructorClient contracts.InstructorBookingClient,
	sectionClient contracts.SectionBookingClient,
	roomClient contracts.RoomScheduleClient,
	checkRunRepo contracts.CheckRunRepository,
	publisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.ConflictUsecase {
	return &conflictUsecase{
		instructorClient: instructorClient,
		sectionClient:    sectionClient,
		roomClient:       roomClient,
		checkRunRepo:     checkRunRepo,
		publisher:        publisher,
		log:              logger,
	}
}

func (u *conflictUsecase) Detect(ctx context.Context, request *requests.ConflictCheck) (*responses.ConflictCheck, error) {
	result, err := u.Evaluate(ctx, request)
	if err != nil {
		return nil, err
	}

	runID := u.recordRun(request, result, models.CheckRunSourceManual)
	u.publishChecked(request, result, runID)

	return result, nil
}

func (u *conflictUsecase) Evaluate(ctx context.Context, request *requests.ConflictCheck) (*responses.ConflictCheck, error) {
	candidates, err := resolveCandidates(request.Slots)
	if err != nil {
		return nil, err
	}

	runCtx, gen := u.beginRun(ctx)
	defer u.endRun(gen)

	var (
		wg                                 sync.WaitGroup
		instructorRes, roomRes, sectionRes dimensionResult
	)

	if request.InstructorID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instructorRes = u.fetchInstructor(runCtx, request.InstructorID)
		}()
	}
	if request.RoomID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			roomRes = u.fetchRoom(runCtx, request.RoomID)
		}()
	}
	if request.SectionID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sectionRes = u.fetchSection(runCtx, request.SectionID)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, exceptions.ErrServerDeadlineExceeded(err)
	}
	if runCtx.Err() != nil {
		return nil, exceptions.ErrDetectSuperseded()
	}

	result := &responses.ConflictCheck{
		Conflicts: make([]responses.SlotConflict, 0, len(candidates)),
	}
	for _, res := range []dimensionResult{instructorRes, roomRes, sectionRes} {
		if res.warning != "" {
			result.Warnings = append(result.Warnings, res.warning)
		}
	}

	for _, candidate := range candidates {
		m := markers{
			instructor: occupied(instructorRes.bookings, candidate.weekday, candidate.startMinute, candidate.endMinute),
			room:       occupied(roomRes.bookings, candidate.weekday, candidate.startMinute, candidate.endMinute),
			section:    occupied(sectionRes.bookings, candidate.weekday, candidate.startMinute, candidate.endMinute),
		}
		if kind, conflicted := classify(m); conflicted {
			result.Conflicts = append(result.Conflicts, responses.SlotConflict{
				Weekday: int(candidate.weekday),
				Slot:    string(candidate.slot),
				Kind:    kind,
			})
		}
	}

	return result, nil
}

// beginRun cancels any in-flight check and registers this one as current.
func (u *conflictUsecase) beginRun(ctx context.Context) (context.Context, uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.cancelLast != nil {
		u.cancelLast()
	}
	runCtx, cancel := context.WithCancel(ctx)
	u.generation++
	u.cancelLast = cancel
	return runCtx, u.generation
}

// endRun releases this run's cancel func unless a newer run already took over.
func (u *conflictUsecase) endRun(gen uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.generation == gen && u.cancelLast != nil {
		u.cancelLast()
		u.cancelLast = nil
	}
}

type dimensionResult struct {
	bookings []models.Booking
	warning  string
}

func (u *conflictUsecase) fetchInstructor(ctx context.Context, instructorID string) dimensionResult {
	bookings, capped, err := fetchAllPages(ctx, models.ResourceKindInstructor, instructorID, func(ctx context.Context, page int) ([]responses.Booking, bool, error) {
		result, err := u.instructorClient.FindBookingsByInstructorID(ctx, instructorID, page, constvars.BookingsPageSize)
		if err != nil {
			return nil, false, err
		}
		return result.Items, len(result.Items) < constvars.BookingsPageSize, nil
	})
	return u.dimensionOutcome("instructor", instructorID, bookings, capped, err)
}

func (u *conflictUsecase) fetchSection(ctx context.Context, sectionID string) dimensionResult {
	bookings, capped, err := fetchAllPages(ctx, models.ResourceKindSection, sectionID, func(ctx context.Context, page int) ([]responses.Booking, bool, error) {
		result, err := u.sectionClient.FindBookingsBySectionID(ctx, sectionID, page, constvars.BookingsPageSize)
		if err != nil {
			return nil, false, err
		}
		return result.Items, len(result.Items) < constvars.BookingsPageSize, nil
	})
	return u.dimensionOutcome("section", sectionID, bookings, capped, err)
}

func (u *conflictUsecase) fetchRoom(ctx context.Context, roomID string) dimensionResult {
	grid, err := u.roomClient.FindWeeklyGridByRoomID(ctx, roomID)
	if err != nil {
		return u.dimensionOutcome("room", roomID, nil, false, err)
	}
	return u.dimensionOutcome("room", roomID, flattenRoomGrid(roomID, grid), false, nil)
}

// dimensionOutcome converts one dimension's fetch result into bookings plus an
// optional warning. Cancellation is not downgraded: it propagates via the run
// context check after the wait, so an aborted fetch yields no misleading
// warning text.
func (u *conflictUsecase) dimensionOutcome(dimension, resourceID string, bookings []models.Booking, capped bool, err error) dimensionResult {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return dimensionResult{}
		}
		u.log.Warn("dimension fetch failed, treating as unoccupied",
			zap.String("dimension", dimension),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return dimensionResult{
			warning: fmt.Sprintf("%s bookings unavailable, dimension skipped", dimension),
		}
	}
	if capped {
		return dimensionResult{
			bookings: bookings,
			warning:  fmt.Sprintf("%s bookings truncated after %d pages, results may be incomplete", dimension, constvars.BookingsMaxPages),
		}
	}
	return dimensionResult{bookings: bookings}
}

// candidate is one requested slot resolved to its clock interval.
type candidate struct {
	weekday     timeslot.WeekdayCode
	slot        timeslot.SlotCode
	startMinute int
	endMinute   int
}

func resolveCandidates(slots []requests.CandidateSlot) ([]candidate, error) {
	candidates := make([]candidate, 0, len(slots))
	for _, s := range slots {
		weekday := timeslot.WeekdayCode(s.Weekday)
		if !weekday.Valid() {
			return nil, exceptions.ErrInvalidWeekdayDigit(s.Weekday)
		}
		code, err := timeslot.ParseSlotCode(s.Slot)
		if err != nil {
			return nil, err
		}
		times, err := timeslot.SlotTimeOf(code)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{
			weekday:     weekday,
			slot:        code,
			startMinute: times.StartMinute,
			endMinute:   times.EndMinute,
		})
	}
	return candidates, nil
}

// recordRun persists the completed check for later review. Persistence is
// best effort; a storage failure is logged and the check result still stands.
func (u *conflictUsecase) recordRun(request *requests.ConflictCheck, result *responses.ConflictCheck, source string) string {
	run := &models.CheckRun{
		Source:       source,
		InstructorID: request.InstructorID,
		RoomID:       request.RoomID,
		SectionID:    request.SectionID,
		Slots:        make([]models.CheckRunSlot, 0, len(request.Slots)),
		Conflicts:    make([]models.CheckRunConflict, 0, len(result.Conflicts)),
		Warnings:     result.Warnings,
		CreatedAt:    time.Now().UTC(),
	}
	for _, s := range request.Slots {
		run.Slots = append(run.Slots, models.CheckRunSlot{Weekday: s.Weekday, Slot: s.Slot})
	}
	for _, c := range result.Conflicts {
		run.Conflicts = append(run.Conflicts, models.CheckRunConflict{Weekday: c.Weekday, Slot: c.Slot, Kind: c.Kind})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := u.checkRunRepo.Insert(ctx, run); err != nil {
		u.log.Warn("failed to record conflict check run", zap.Error(err))
		return ""
	}
	return run.ID.Hex()
}

// publishChecked emits the schedule.checked event. Best effort as well.
func (u *conflictUsecase) publishChecked(request *requests.ConflictCheck, result *responses.ConflictCheck, runID string) {
	event := contracts.ScheduleCheckedEvent{
		EventID:       uuid.New().String(),
		CheckRunID:    runID,
		InstructorID:  request.InstructorID,
		RoomID:        request.RoomID,
		SectionID:     request.SectionID,
		SlotCount:     len(request.Slots),
		ConflictCount: len(result.Conflicts),
		CheckedAt:     time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := u.publisher.PublishScheduleChecked(ctx, event); err != nil {
		u.log.Warn("failed to publish schedule.checked event", zap.Error(err))
	}
}
