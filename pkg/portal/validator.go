package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	instance *validator.Validate
	errors   map[string]string
}

func GetDefaultValidator() *Validator {
	return MakeValidatorFrom(
		validator.New(validator.WithRequiredStructEnabled()),
	)
}

func MakeValidatorFrom(abstract *validator.Validate) *Validator {
	registerCustomValidations(abstract)

	return &Validator{
		instance: abstract,
		errors:   make(map[string]string),
	}
}

func (v *Validator) Passes(target any) (bool, error) {
	v.errors = make(map[string]string)

	if err := v.instance.Struct(target); err != nil {
		v.parseError(err)

		return false, err
	}

	return true, nil
}

func (v *Validator) Rejects(target any) (bool, error) {
	passes, err := v.Passes(target)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]string {
	return v.errors
}

func (v *Validator) GetErrorsAsJson() string {
	blob, err := json.Marshal(v.errors)

	if err != nil {
		return ""
	}

	return string(blob)
}

func (v *Validator) parseError(err error) {
	var fields validator.ValidationErrors

	if !errors.As(err, &fields) {
		v.errors["_"] = err.Error()

		return
	}

	for _, field := range fields {
		v.errors[field.Namespace()] = strings.TrimSpace(
			fmt.Sprintf("%s %s", field.Tag(), field.Param()),
		)
	}
}
