package conflicts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingClient struct {
	fetch func(ctx context.Context, id string, page, pageSize int) (*responses.BookingPage, error)
}

func (s *stubBookingClient) FindBookingsByInstructorID(ctx context.Context, id string, page, pageSize int) (*responses.BookingPage, error) {
	return s.fetch(ctx, id, page, pageSize)
}

func (s *stubBookingClient) FindBookingsBySectionID(ctx context.Context, id string, page, pageSize int) (*responses.BookingPage, error) {
	return s.fetch(ctx, id, page, pageSize)
}

type stubRoomClient struct {
	fetch func(ctx context.Context, roomID string) (*responses.RoomWeeklyGrid, error)
}

func (s *stubRoomClient) FindWeeklyGridByRoomID(ctx context.Context, roomID string) (*responses.RoomWeeklyGrid, error) {
	return s.fetch(ctx, roomID)
}

type stubCheckRunRepo struct {
	mu       sync.Mutex
	inserted []*models.CheckRun
}

func (s *stubCheckRunRepo) Insert(ctx context.Context, run *models.CheckRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserted = append(s.inserted, run)
	return nil
}

func (s *stubCheckRunRepo) FindRecent(ctx context.Context, page, pageSize int) ([]models.CheckRun, int, error) {
	return nil, 0, nil
}

type stubPublisher struct {
	mu      sync.Mutex
	checked []contracts.ScheduleCheckedEvent
}

func (s *stubPublisher) PublishScheduleChecked(ctx context.Context, event contracts.ScheduleCheckedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checked = append(s.checked, event)
	return nil
}

func (s *stubPublisher) PublishProposalReady(ctx context.Context, event contracts.ProposalReadyEvent) error {
	return nil
}

func emptyBookingClient() *stubBookingClient {
	return &stubBookingClient{
		fetch: func(ctx context.Context, id string, page, pageSize int) (*responses.BookingPage, error) {
			return &responses.BookingPage{Items: nil, Page: page, PageSize: pageSize}, nil
		},
	}
}

func emptyRoomClient() *stubRoomClient {
	return &stubRoomClient{
		fetch: func(ctx context.Context, roomID string) (*responses.RoomWeeklyGrid, error) {
			return &responses.RoomWeeklyGrid{RoomID: roomID, Grid: map[string]map[string]*responses.Booking{}}, nil
		},
	}
}

func singleBookingClient(weekday int, start, end string) *stubBookingClient {
	return &stubBookingClient{
		fetch: func(ctx context.Context, id string, page, pageSize int) (*responses.BookingPage, error) {
			if page > 1 {
				return &responses.BookingPage{Page: page, PageSize: pageSize}, nil
			}
			return &responses.BookingPage{
				Items: []responses.Booking{
					{ID: "b1", CourseID: "c1", Weekday: weekday, StartTime: start, EndTime: end},
				},
				Page:     page,
				PageSize: pageSize,
			}, nil
		},
	}
}

func newTestUsecase(instructor, section *stubBookingClient, room *stubRoomClient) (*conflictUsecase, *stubCheckRunRepo, *stubPublisher) {
	repo := &stubCheckRunRepo{}
	publisher := &stubPublisher{}
	u := &conflictUsecase{
		instructorClient: instructor,
		sectionClient:    section,
		roomClient:       room,
		checkRunRepo:     repo,
		publisher:        publisher,
		log:              zap.NewNop(),
	}
	return u, repo, publisher
}

func TestEvaluateSingleDimension(t *testing.T) {
	t.Run("instructor overlap yields INSTRUCTOR conflict", func(t *testing.T) {
		u, _, _ := newTestUsecase(singleBookingClient(2, "07:00", "07:50"), emptyBookingClient(), emptyRoomClient())

		result, err := u.Evaluate(context.Background(), &requests.ConflictCheck{
			InstructorID: "i1",
			Slots:        []requests.CandidateSlot{{Weekday: 2, Slot: "M1"}},
		})
		require.NoError(t, err)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, constvars.ConflictInstructor, result.Conflicts[0].Kind)
		assert.Equal(t, 2, result.Conflicts[0].Weekday)
		assert.Equal(t, "M1", result.Conflicts[0].Slot)
	})

	t.Run("same slot on another weekday stays free", func(t *testing.T) {
		u, _, _ := newTestUsecase(singleBookingClient(2, "07:00", "07:50"), emptyBookingClient(), emptyRoomClient())

		result, err := u.Evaluate(context.Background(), &requests.ConflictCheck{
			InstructorID: "i1",
			Slots:        []requests.CandidateSlot{{Weekday: 3, Slot: "M1"}},
		})
		require.NoError(t, err)
		assert.Empty(t, result.Conflicts)
	})

	t.Run("touching intervals do not conflict", func(t *testing.T) {
		// Existing booking ends exactly where M2 starts.
		u, _, _ := newTestUsecase(singleBookingClient(2, "07:00", "07:50"), emptyBookingClient(), emptyRoomClient())

		result, err := u.Evaluate(context.Background(), &requests.ConflictCheck{
			InstructorID: "i1",
			Slots:        []requests.CandidateSlot{{Weekday: 2, Slot: "M2"}},
		})
		require.NoError(t, err)
		assert.Empty(t, result.Conflicts)
	})

	t.Run("unknown slot code is rejected", func(t *testing.T) {
		u, _, _ := newTestUsecase(emptyBookingClient(), emptyBookingClient(), emptyRoomClient())

		_, err := u.Evaluate(context.Background(), &requests.ConflictCheck{
			InstructorID: "i1",
			Slots:        []requests.CandidateSlot{{Weekday: 2, Slot: "X9"}},
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestEvaluateRoomGrid(t *testing.T) {
	roomClient := &stubRoomClient{
		fetch: func(ctx context.Context, roomID string) (*responses.RoomWeeklyGrid, error) {
			return &responses.RoomWeeklyGrid{
				RoomID: roomID,
				Grid: map[string]map[string]*responses.Booking{
					"4": {
						"T3": {ID: "b2", CourseID: "c2"},
						"T4": nil,
					},
				},
			}, nil
		},
	}
	u, _, _ := newTestUsecase(emptyBookingClient(), emptyBookingClient(), roomClient)

	result, err := u.Evaluate(context.Background(), &requests.ConflictCheck{
		RoomID: "r1",
		Slots: []requests.CandidateSlot{
			{Weekday: 4, Slot: "T3"},
			{Weekday: 4, Slot: "T4"},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, constvars.ConflictRoom, result.Conflicts[0].Kind)
	assert.Equal(t, "T3", result.Conflicts[0].Slot)
}

func TestEvaluateCombinedDimensions(t *testing.T) {
	occupiedRoom := &stubRoomClient{
		fetch: func(ctx context.Context, roomID string) (*responses.RoomWeeklyGrid, error) {
			return &responses.RoomWeeklyGrid{
				RoomID: roomID,
				Grid: map[string]map[string]*responses.Booking{
					"2": {"M1": {ID: "rb"}},
				},
			}, nil
		},
	}
	u, _, _ := newTestUsecase(singleBookingClient(2, "07:00", "07:50"), singleBookingClient(2, "07:10", "07:40"), occupiedRoom)

	result, err := u.Evaluate(context.Background(), &requests.ConflictCheck{
		InstructorID: "i1",
		RoomID:       "r1",
		SectionID:    "s1",
		Slots:        []requests.CandidateSlot{{Weekday: 2, Slot: "M1"}},
	})
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, constvars.ConflictAll, result.Conflicts[0].Kind)
}

func TestEvaluateDimensionDegradesToWarning(t *testing.T) {
	failing := &stubBookingClient{
		fetch: func(ctx context.Context, id string, page, pageSize int) (*responses.BookingPage, error) {
			return nil, errors.New("connection refused")
		},
	}
	u, _, _ := newTestUsecase(failing, singleBookingClient(2, "07:00", "07:50"), emptyRoomClient())

	result, err := u.Evaluate(context.Background(), &requests.ConflictCheck{
		InstructorID: "i1",
		SectionID:    "s1",
		Slots:        []requests.CandidateSlot{{Weekday: 2, Slot: "M1"}},
	})
	require.NoError(t, err)

	// The failed instructor dimension is skipped; the section overlap still reports.
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, constvars.ConflictSection, result.Conflicts[0].Kind)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "instructor")
}

func TestEvaluatePaginationCap(t *testing.T) {
	var calls int64
	fullPage := make([]responses.Booking, constvars.BookingsPageSize)
	for i := range fullPage {
		fullPage[i] = responses.Booking{Weekday: 2, StartTime: "07:00", EndTime: "07:50"}
	}
	greedy := &stubBookingClient{
		fetch: func(ctx context.Context, id string, page, pageSize int) (*responses.BookingPage, error) {
			atomic.AddInt64(&calls, 1)
			return &responses.BookingPage{Items: fullPage, Page: page, PageSize: pageSize}, nil
		},
	}
	u, _, _ := newTestUsecase(greedy, emptyBookingClient(), emptyRoomClient())

	result, err := u.Evaluate(context.Background(), &requests.ConflictCheck{
		InstructorID: "i1",
		Slots:        []requests.CandidateSlot{{Weekday: 2, Slot: "M1"}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(constvars.BookingsMaxPages), atomic.LoadInt64(&calls))
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "truncated")
	require.Len(t, result.Conflicts, 1)
}

func TestEvaluateSupersededRunIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int64
	slow := &stubBookingClient{
		fetch: func(ctx context.Context, id string, page, pageSize int) (*responses.BookingPage, error) {
			if atomic.AddInt64(&calls, 1) == 1 {
				close(started)
				select {
				case <-release:
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return &responses.BookingPage{Page: page, PageSize: pageSize}, nil
		},
	}
	u, _, _ := newTestUsecase(slow, emptyBookingClient(), emptyRoomClient())

	request := &requests.ConflictCheck{
		InstructorID: "i1",
		Slots:        []requests.CandidateSlot{{Weekday: 2, Slot: "M1"}},
	}

	firstErr := make(chan error, 1)
	go func() {
		_, err := u.Evaluate(context.Background(), request)
		firstErr <- err
	}()

	<-started

	// A newer trigger supersedes the in-flight run.
	result, err := u.Evaluate(context.Background(), request)
	require.NoError(t, err)
	assert.Empty(t, result.Conflicts)

	close(release)

	select {
	case err := <-firstErr:
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	case <-time.After(2 * time.Second):
		t.Fatal("superseded run did not finish")
	}
}

func TestDetectRecordsRunAndPublishesEvent(t *testing.T) {
	u, repo, publisher := newTestUsecase(singleBookingClient(2, "07:00", "07:50"), emptyBookingClient(), emptyRoomClient())

	result, err := u.Detect(context.Background(), &requests.ConflictCheck{
		InstructorID: "i1",
		Slots:        []requests.CandidateSlot{{Weekday: 2, Slot: "M1"}},
	})
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)

	require.Len(t, repo.inserted, 1)
	run := repo.inserted[0]
	assert.Equal(t, models.CheckRunSourceManual, run.Source)
	assert.Equal(t, "i1", run.InstructorID)
	require.Len(t, run.Conflicts, 1)
	assert.Equal(t, constvars.ConflictInstructor, run.Conflicts[0].Kind)

	require.Len(t, publisher.checked, 1)
	event := publisher.checked[0]
	assert.Equal(t, run.ID.Hex(), event.CheckRunID)
	assert.Equal(t, 1, event.SlotCount)
	assert.Equal(t, 1, event.ConflictCount)
}

func TestClassifyExhaustive(t *testing.T) {
	cases := []struct {
		m          markers
		kind       string
		conflicted bool
	}{
		{markers{false, false, false}, "", false},
		{markers{true, false, false}, constvars.ConflictInstructor, true},
		{markers{false, true, false}, constvars.ConflictRoom, true},
		{markers{false, false, true}, constvars.ConflictSection, true},
		{markers{true, true, false}, constvars.ConflictInstructorRoom, true},
		{markers{true, false, true}, constvars.ConflictInstructorSection, true},
		{markers{false, true, true}, constvars.ConflictRoomSection, true},
		{markers{true, true, true}, constvars.ConflictAll, true},
	}

	for _, tc := range cases {
		name := fmt.Sprintf("i=%t r=%t s=%t", tc.m.instructor, tc.m.room, tc.m.section)
		t.Run(name, func(t *testing.T) {
			kind, conflicted := classify(tc.m)
			assert.Equal(t, tc.conflicted, conflicted)
			assert.Equal(t, tc.kind, kind)
		})
	}
}
