package utils

import (
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/timeslot"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("slotcode", func(fl validator.FieldLevel) bool {
		_, err := timeslot.ParseSlotCode(fl.Field().String())
		return err == nil
	})

	v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return timeslot.WeekdayCode(fl.Field().Int()).Valid()
	})

	return v
}

// ValidateStruct runs tag validation on a request DTO and converts failures
// into the client-facing error shape.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
