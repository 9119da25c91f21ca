package portal

import (
	"github.com/go-playground/validator/v10"

	"github.com/folio/pkg/scheduler"
)

func registerCustomValidations(v *validator.Validate) {
	if v == nil {
		return
	}

	if err := v.RegisterValidation("cron", validateCronExpression); err != nil {
		panic("portal: failed to register cron validation: " + err.Error())
	}
}

// validateCronExpression accepts what the export scheduler can run.
func validateCronExpression(fl validator.FieldLevel) bool {
	return scheduler.Validate(fl.Field().String()) == nil
}
