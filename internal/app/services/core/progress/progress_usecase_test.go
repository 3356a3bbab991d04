package progress

import (
	"context"
	"testing"

	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// 2025-03-03 is a Monday; weekday digit 2 in the notation convention.
const (
	courseStart = "2025-03-03"
	courseEnd   = "2025-03-14"
)

func newUsecase() *progressUsecase {
	return &progressUsecase{log: zap.NewNop()}
}

func TestProject(t *testing.T) {
	u := newUsecase()

	project := func(t *testing.T, asOf string) int {
		t.Helper()
		result, err := u.Project(context.Background(), &requests.ProgressProjection{
			Pattern:   "2M123",
			StartDate: courseStart,
			EndDate:   courseEnd,
			AsOf:      asOf,
		})
		require.NoError(t, err)
		return result.OccurrencesSoFar
	}

	t.Run("day before start counts nothing", func(t *testing.T) {
		assert.Equal(t, 0, project(t, "2025-03-02"))
	})

	t.Run("first meeting day counts all its slots", func(t *testing.T) {
		assert.Equal(t, 3, project(t, courseStart))
	})

	t.Run("mid week adds nothing on off days", func(t *testing.T) {
		assert.Equal(t, 3, project(t, "2025-03-06"))
	})

	t.Run("second monday doubles the total", func(t *testing.T) {
		assert.Equal(t, 6, project(t, "2025-03-10"))
	})

	t.Run("as-of past the end clamps at the end date", func(t *testing.T) {
		assert.Equal(t, project(t, courseEnd), project(t, "2025-06-01"))
	})

	t.Run("unset start date projects zero", func(t *testing.T) {
		result, err := u.Project(context.Background(), &requests.ProgressProjection{
			Pattern: "2M123",
			EndDate: courseEnd,
			AsOf:    "2025-03-10",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.OccurrencesSoFar)
	})

	t.Run("weekend digits never produce occurrences", func(t *testing.T) {
		result, err := u.Project(context.Background(), &requests.ProgressProjection{
			Pattern:   "17M1",
			StartDate: "2025-03-02",
			EndDate:   "2025-03-30",
			AsOf:      "2025-03-30",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.OccurrencesSoFar)
	})

	t.Run("raw booking list substitutes for a pattern", func(t *testing.T) {
		result, err := u.Project(context.Background(), &requests.ProgressProjection{
			Bookings: []requests.CandidateSlot{
				{Weekday: 2, Slot: "M1"},
				{Weekday: 4, Slot: "T3"},
			},
			StartDate: courseStart,
			EndDate:   courseEnd,
			AsOf:      "2025-03-05",
		})
		require.NoError(t, err)
		// Monday M1 plus Wednesday T3.
		assert.Equal(t, 2, result.OccurrencesSoFar)
	})

	t.Run("percent complete derives from total required", func(t *testing.T) {
		result, err := u.Project(context.Background(), &requests.ProgressProjection{
			Pattern:       "2M123",
			StartDate:     courseStart,
			EndDate:       courseEnd,
			AsOf:          courseStart,
			TotalRequired: 12,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.OccurrencesSoFar)
		assert.InDelta(t, 25.0, result.PercentComplete, 0.001)
	})

	t.Run("malformed pattern falls back to raw bookings", func(t *testing.T) {
		result, err := u.Project(context.Background(), &requests.ProgressProjection{
			Pattern: "M1",
			Bookings: []requests.CandidateSlot{
				{Weekday: 2, Slot: "M1"},
			},
			StartDate: courseStart,
			EndDate:   courseEnd,
			AsOf:      courseStart,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.OccurrencesSoFar)
	})

	t.Run("malformed pattern without bookings is rejected", func(t *testing.T) {
		_, err := u.Project(context.Background(), &requests.ProgressProjection{
			Pattern:   "M1",
			StartDate: courseStart,
			EndDate:   courseEnd,
			AsOf:      courseStart,
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestForecast(t *testing.T) {
	u := newUsecase()

	t.Run("whole weeks from scratch", func(t *testing.T) {
		result, err := u.Forecast(context.Background(), &requests.CompletionForecast{
			Pattern:       "2M123",
			StartDate:     courseStart,
			TotalRequired: 12,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.OccurrencesPerWeek)
		assert.Equal(t, 4, result.WeeksRemaining)
		assert.Equal(t, 12, result.OccurrencesRemained)
		assert.Equal(t, "2025-03-31", result.CompletionDate)
	})

	t.Run("partial week rounds up", func(t *testing.T) {
		result, err := u.Forecast(context.Background(), &requests.CompletionForecast{
			Pattern:           "2M123",
			StartDate:         courseStart,
			TotalRequired:     12,
			OccurrencesLogged: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.WeeksRemaining)
		assert.Equal(t, 7, result.OccurrencesRemained)
		assert.Equal(t, "2025-03-24", result.CompletionDate)
	})

	t.Run("already complete forecasts zero weeks", func(t *testing.T) {
		result, err := u.Forecast(context.Background(), &requests.CompletionForecast{
			Pattern:           "2M123",
			StartDate:         courseStart,
			TotalRequired:     12,
			OccurrencesLogged: 15,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.WeeksRemaining)
		assert.Equal(t, 0, result.OccurrencesRemained)
		assert.Equal(t, courseStart, result.CompletionDate)
	})

	t.Run("weekend-only pattern is indeterminate", func(t *testing.T) {
		_, err := u.Forecast(context.Background(), &requests.CompletionForecast{
			Pattern:       "17M1",
			StartDate:     courseStart,
			TotalRequired: 12,
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}
