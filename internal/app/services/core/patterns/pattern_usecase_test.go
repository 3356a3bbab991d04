package patterns

import (
	"context"
	"testing"

	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEncode(t *testing.T) {
	u := NewPatternUsecase(zap.NewNop())

	t.Run("merges weekdays sharing a slot set", func(t *testing.T) {
		result, err := u.Encode(context.Background(), &requests.PatternEncode{
			Bookings: []requests.CandidateSlot{
				{Weekday: 2, Slot: "M1"},
				{Weekday: 2, Slot: "M2"},
				{Weekday: 4, Slot: "M1"},
				{Weekday: 4, Slot: "M2"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "24M12", result.Pattern)
	})

	t.Run("splits weekdays with different slots", func(t *testing.T) {
		result, err := u.Encode(context.Background(), &requests.PatternEncode{
			Bookings: []requests.CandidateSlot{
				{Weekday: 2, Slot: "M1"},
				{Weekday: 4, Slot: "T3"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "2M1, 4T3", result.Pattern)
	})

	t.Run("rejects out-of-catalog slots", func(t *testing.T) {
		_, err := u.Encode(context.Background(), &requests.PatternEncode{
			Bookings: []requests.CandidateSlot{{Weekday: 2, Slot: "N5"}},
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestDecode(t *testing.T) {
	u := NewPatternUsecase(zap.NewNop())

	t.Run("expands a multi-part group per weekday", func(t *testing.T) {
		result, err := u.Decode(context.Background(), &requests.PatternDecode{Pattern: "35T12N1"})
		require.NoError(t, err)

		assert.Equal(t, []int{3, 5}, result.Weekdays)
		require.Len(t, result.Days, 2)
		for _, day := range result.Days {
			assert.Equal(t, []string{"T1", "T2", "N1"}, day.Slots)
			assert.Equal(t, 3, day.Occurrences)
		}

		require.Len(t, result.Bookings, 6)
		assert.Equal(t, responses.ProposedSlot{Weekday: 3, Slot: "T1"}, result.Bookings[0])
		assert.Equal(t, responses.ProposedSlot{Weekday: 5, Slot: "N1"}, result.Bookings[5])
	})

	t.Run("rejects malformed notation", func(t *testing.T) {
		_, err := u.Decode(context.Background(), &requests.PatternDecode{Pattern: "2M"})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}
