package progress

import (
	"context"
	"time"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/pattern"
	"timetable-service/internal/pkg/timeslot"

	"go.uber.org/zap"
)

// progressUsecase projects how many instructional occurrences a course has
// accumulated between its start date and a reference date, and forecasts when
// a course will hit its required occurrence total. Both computations are pure
// calendar walks over the weekly occurrence table.
type progressUsecase struct {
	log *zap.Logger
}

func NewProgressUsecase(logger *zap.Logger) contracts.ProgressUsecase {
	return &progressUsecase{log: logger}
}

func (u *progressUsecase) Project(ctx context.Context, request *requests.ProgressProjection) (*responses.ProgressProjection, error) {
	occurrences, err := occurrenceTable(request.Pattern, request.Bookings)
	if err != nil {
		return nil, err
	}

	// A course with no recorded start date has accumulated nothing.
	if request.StartDate == "" {
		return buildProjection(0, request.TotalRequired), nil
	}

	start, err := time.Parse(constvars.CourseDateLayout, request.StartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	end, err := time.Parse(constvars.CourseDateLayout, request.EndDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	asOf, err := time.Parse(constvars.CourseDateLayout, request.AsOf)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	limit := asOf
	if end.Before(limit) {
		limit = end
	}

	soFar := 0
	for day := start; !day.After(limit); day = day.AddDate(0, 0, 1) {
		weekday := timeslot.FromTimeWeekday(day.Weekday())
		// Calendar weekends never produce instructional occurrences, even
		// when the pattern nominally carries their digits.
		if weekday.IsWeekend() {
			continue
		}
		soFar += occurrences[weekday]
	}

	return buildProjection(soFar, request.TotalRequired), nil
}

func (u *progressUsecase) Forecast(ctx context.Context, request *requests.CompletionForecast) (*responses.CompletionForecast, error) {
	occurrences, err := occurrenceTable(request.Pattern, nil)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(constvars.CourseDateLayout, request.StartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	perWeek := 0
	for weekday, n := range occurrences {
		if weekday.IsWeekend() {
			continue
		}
		perWeek += n
	}
	if perWeek == 0 {
		return nil, exceptions.ErrForecastIndeterminate()
	}

	remaining := request.TotalRequired - request.OccurrencesLogged
	if remaining < 0 {
		remaining = 0
	}
	weeks := (remaining + perWeek - 1) / perWeek

	return &responses.CompletionForecast{
		CompletionDate:      start.AddDate(0, 0, weeks*7).Format(constvars.CourseDateLayout),
		WeeksRemaining:      weeks,
		OccurrencesPerWeek:  perWeek,
		OccurrencesRemained: remaining,
	}, nil
}

// occurrenceTable builds the weekday -> occurrences-per-week map from the
// notation string, or from a raw booking list. A malformed notation falls
// back to the booking list when one accompanies it; without a fallback the
// parse error stands.
func occurrenceTable(notation string, bookings []requests.CandidateSlot) (map[timeslot.WeekdayCode]int, error) {
	table := map[timeslot.WeekdayCode]int{}

	if notation != "" {
		parsed, err := pattern.Parse(notation)
		if err == nil {
			for _, w := range parsed.Weekdays() {
				table[w] = parsed.OccurrenceCountOn(w)
			}
			return table, nil
		}
		if len(bookings) == 0 {
			return nil, err
		}
	}

	for _, b := range bookings {
		weekday := timeslot.WeekdayCode(b.Weekday)
		if !weekday.Valid() {
			return nil, exceptions.ErrInvalidWeekdayDigit(b.Weekday)
		}
		if _, err := timeslot.ParseSlotCode(b.Slot); err != nil {
			return nil, err
		}
		table[weekday]++
	}
	return table, nil
}

func buildProjection(soFar, totalRequired int) *responses.ProgressProjection {
	result := &responses.ProgressProjection{
		OccurrencesSoFar: soFar,
		TotalRequired:    totalRequired,
	}
	if totalRequired > 0 {
		result.PercentComplete = float64(soFar) / float64(totalRequired) * 100
		if result.PercentComplete > 100 {
			result.PercentComplete = 100
		}
	}
	return result
}
