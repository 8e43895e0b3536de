package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return validate
}

// validateInput runs the struct tags of input and maps the first failing
// "field.tag" onto a ValidationError from rules. Fields fail in declaration
// order, so the order of struct fields is the order checks are reported.
func validateInput(input any, rules map[string]*ValidationError) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}
	first := fieldErrors[0]
	if mapped, ok := rules[first.Field()+"."+first.Tag()]; ok {
		return mapped
	}
	if mapped, ok := rules[first.Field()]; ok {
		return mapped
	}
	return newValidationError(first.Field(), "validation."+first.Tag(), first.Error())
}

func trimmed(value string) string {
	return strings.TrimSpace(value)
}
