package pattern

import (
	"testing"
	"timetable-service/internal/pkg/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wb(weekday int, slot string) WeeklyBooking {
	return WeeklyBooking{Weekday: timeslot.WeekdayCode(weekday), Slot: timeslot.SlotCode(slot)}
}

func TestEncode(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		s, err := Encode(nil)
		require.NoError(t, err)
		assert.Equal(t, "", s)
	})

	t.Run("Single Weekday", func(t *testing.T) {
		s, err := Encode([]WeeklyBooking{wb(2, "M1"), wb(2, "M2"), wb(2, "M3")})
		require.NoError(t, err)
		assert.Equal(t, "2M123", s)
	})

	t.Run("Homogeneous Weekdays Merge", func(t *testing.T) {
		s, err := Encode([]WeeklyBooking{wb(2, "M1"), wb(2, "M2"), wb(4, "M1"), wb(4, "M2")})
		require.NoError(t, err)
		assert.Equal(t, "24M12", s)
	})

	t.Run("Heterogeneous Weekdays Split", func(t *testing.T) {
		s, err := Encode([]WeeklyBooking{wb(2, "M1"), wb(4, "T3")})
		require.NoError(t, err)
		assert.Equal(t, "2M1, 4T3", s)
	})

	t.Run("Mixed Day Parts Share The Weekday Run", func(t *testing.T) {
		s, err := Encode([]WeeklyBooking{
			wb(3, "T1"), wb(3, "T2"), wb(3, "N1"),
			wb(5, "T1"), wb(5, "T2"), wb(5, "N1"),
		})
		require.NoError(t, err)
		assert.Equal(t, "35T12N1", s)
	})

	t.Run("Slot Order Is Canonical", func(t *testing.T) {
		s, err := Encode([]WeeklyBooking{wb(2, "N1"), wb(2, "M2"), wb(2, "M1"), wb(2, "T4")})
		require.NoError(t, err)
		assert.Equal(t, "2M12T4N1", s)
	})

	t.Run("Duplicate Bookings Collapse", func(t *testing.T) {
		s, err := Encode([]WeeklyBooking{wb(2, "M1"), wb(2, "M1")})
		require.NoError(t, err)
		assert.Equal(t, "2M1", s)
	})

	t.Run("Invalid Weekday", func(t *testing.T) {
		_, err := Encode([]WeeklyBooking{wb(8, "M1")})
		assert.Error(t, err)
	})

	t.Run("Invalid Slot", func(t *testing.T) {
		_, err := Encode([]WeeklyBooking{wb(2, "N6")})
		assert.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	t.Run("Empty Pattern Has No Occurrences", func(t *testing.T) {
		p, err := Parse("")
		require.NoError(t, err)
		assert.Empty(t, p.Weekdays())
		assert.Zero(t, p.OccurrenceCountOn(2))
	})

	t.Run("Single Group", func(t *testing.T) {
		p, err := Parse("2M123")
		require.NoError(t, err)
		assert.Equal(t, []timeslot.WeekdayCode{2}, p.Weekdays())
		assert.True(t, p.HasOccurrenceOn(2))
		assert.False(t, p.HasOccurrenceOn(3))
		assert.Equal(t, 3, p.OccurrenceCountOn(2))
		assert.Equal(t, []timeslot.SlotCode{"M1", "M2", "M3"}, p.SlotsOn(2))
	})

	t.Run("Merged Weekday Run", func(t *testing.T) {
		p, err := Parse("24M12")
		require.NoError(t, err)
		assert.Equal(t, []timeslot.WeekdayCode{2, 4}, p.Weekdays())
		assert.Equal(t, 2, p.OccurrenceCountOn(2))
		assert.Equal(t, 2, p.OccurrenceCountOn(4))
	})

	t.Run("Shared Run Across Day Parts", func(t *testing.T) {
		p, err := Parse("35T12N1")
		require.NoError(t, err)
		assert.Equal(t, []timeslot.WeekdayCode{3, 5}, p.Weekdays())
		assert.Equal(t, 3, p.OccurrenceCountOn(3))
		assert.Equal(t, 3, p.OccurrenceCountOn(5))
		assert.Equal(t, []timeslot.SlotCode{"T1", "T2", "N1"}, p.SlotsOn(5))
	})

	t.Run("Comma Separated Groups", func(t *testing.T) {
		p, err := Parse("2M1, 4T3")
		require.NoError(t, err)
		assert.Equal(t, []timeslot.WeekdayCode{2, 4}, p.Weekdays())
		assert.Equal(t, []timeslot.SlotCode{"M1"}, p.SlotsOn(2))
		assert.Equal(t, []timeslot.SlotCode{"T3"}, p.SlotsOn(4))
	})

	t.Run("Malformed Patterns", func(t *testing.T) {
		for _, s := range []string{
			"M1",      // no weekday digits
			"2",       // no day-part letter
			"2M",      // no ordinals
			"2X1",     // unknown day-part
			"8M1",     // weekday digit out of range
			"2M0",     // ordinal zero
			"2M7",     // ordinal beyond morning range
			"2N5",     // ordinal beyond evening range
			"2M1,4T3", // separator must be comma-space
			"2M1, ",   // trailing separator
			"2M1 4T3", // space is not a separator
		} {
			_, err := Parse(s)
			assert.Error(t, err, "pattern %q should be rejected", s)
		}
	})

	t.Run("String Round Trip", func(t *testing.T) {
		for _, s := range []string{"2M123", "24M12", "35T12N1", "2M1, 4T3", ""} {
			p, err := Parse(s)
			require.NoError(t, err)
			assert.Equal(t, s, p.String())
		}
	})
}

func TestRoundTrip(t *testing.T) {
	cases := [][]WeeklyBooking{
		{wb(2, "M1"), wb(2, "M2"), wb(2, "M3")},
		{wb(2, "M1"), wb(2, "M2"), wb(4, "M1"), wb(4, "M2")},
		{wb(2, "M1"), wb(4, "T3")},
		{wb(3, "T1"), wb(3, "T2"), wb(3, "N1"), wb(5, "T1"), wb(5, "T2"), wb(5, "N1")},
		{wb(6, "N4")},
	}

	for _, bookings := range cases {
		encoded, err := Encode(bookings)
		require.NoError(t, err)

		p, err := Parse(encoded)
		require.NoError(t, err, "pattern %q", encoded)

		counts := map[timeslot.WeekdayCode]int{}
		for _, b := range bookings {
			counts[b.Weekday]++
		}
		for w, want := range counts {
			assert.Equal(t, want, p.OccurrenceCountOn(w), "pattern %q weekday %d", encoded, w)
		}
		assert.Len(t, p.Weekdays(), len(counts), "pattern %q", encoded)
	}
}
