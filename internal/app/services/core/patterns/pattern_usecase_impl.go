package patterns

import (
	"context"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/pattern"
	"timetable-service/internal/pkg/timeslot"

	"go.uber.org/zap"
)

type patternUsecase struct {
	log *zap.Logger
}

func NewPatternUsecase(logger *zap.Logger) contracts.PatternUsecase {
	return &patternUsecase{log: logger}
}

func (u *patternUsecase) Encode(ctx context.Context, request *requests.PatternEncode) (*responses.PatternEncode, error) {
	bookings := make([]pattern.WeeklyBooking, 0, len(request.Bookings))
	for _, b := range request.Bookings {
		bookings = append(bookings, pattern.WeeklyBooking{
			Weekday: timeslot.WeekdayCode(b.Weekday),
			Slot:    timeslot.SlotCode(b.Slot),
		})
	}

	encoded, err := pattern.Encode(bookings)
	if err != nil {
		return nil, err
	}

	u.log.Debug("encoded schedule pattern",
		zap.Int("bookings", len(bookings)),
		zap.String("pattern", encoded),
	)

	return &responses.PatternEncode{Pattern: encoded}, nil
}

func (u *patternUsecase) Decode(ctx context.Context, request *requests.PatternDecode) (*responses.PatternDecode, error) {
	parsed, err := pattern.Parse(request.Pattern)
	if err != nil {
		return nil, err
	}

	weekdays := parsed.Weekdays()
	result := &responses.PatternDecode{
		Pattern:  parsed.String(),
		Weekdays: make([]int, 0, len(weekdays)),
		Days:     make([]responses.PatternDay, 0, len(weekdays)),
	}
	for _, w := range weekdays {
		slots := parsed.SlotsOn(w)
		day := responses.PatternDay{
			Weekday:     int(w),
			Slots:       make([]string, 0, len(slots)),
			Occurrences: parsed.OccurrenceCountOn(w),
		}
		for _, s := range slots {
			day.Slots = append(day.Slots, string(s))
		}
		result.Weekdays = append(result.Weekdays, int(w))
		result.Days = append(result.Days, day)
	}

	bookings := parsed.Bookings()
	result.Bookings = make([]responses.ProposedSlot, 0, len(bookings))
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, responses.ProposedSlot{
			Weekday: int(b.Weekday),
			Slot:    string(b.Slot),
		})
	}

	return result, nil
}
