package request

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"venuebook/internal/domain/schedule"
)

// RegisterValidators installs custom binding validators on gin's default
// validator engine. Call once at startup.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("hhmm", validHHMM)
}

func validHHMM(fl validator.FieldLevel) bool {
	_, err := schedule.ParseTimeOfDay(fl.Field().String())
	return err == nil
}
