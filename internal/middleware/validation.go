package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/vmelnyk/timetable/internal/app/models"
)

// RegisterCustomValidators installs the schedule enum validators on gin's
// binding engine. Call once at startup, before the router handles traffic.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("dayofweek", validDayOfWeek); err != nil {
		return err
	}
	return v.RegisterValidation("parity", validParity)
}

func validDayOfWeek(fl validator.FieldLevel) bool {
	return models.DayOfWeek(fl.Field().String()).Valid()
}

func validParity(fl validator.FieldLevel) bool {
	return models.Parity(fl.Field().String()).Valid()
}
