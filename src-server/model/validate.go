package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// report json names instead of Go field names
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		if err := validate.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(Enum)
			return ok && e.Valid()
		}); err != nil {
			panic(fmt.Sprintf("can't register enum validation: %v", err))
		}
		if err := validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		}); err != nil {
			panic(fmt.Sprintf("can't register notblank validation: %v", err))
		}
	})
	return validate
}

func ValidateAttendeeInput(in AttendeeInput) error {
	return validateStruct(in)
}

func ValidateGroupInput(in GroupInput) error {
	return validateStruct(in)
}

func validateStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validateStruct: %w", err)
	}
	details := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: fieldMessage(fe),
		})
	}
	return &ValidationError{Details: details}
}

// "AttendeeInput.responses.industry" -> "responses.industry"
func fieldPath(namespace string) string {
	_, rest, ok := strings.Cut(namespace, ".")
	if !ok {
		return namespace
	}
	return rest
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "enum":
		return "must be one of: " + strings.Join(allowedValues(fe.Value()), ", ")
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

func allowedValues(v any) []string {
	var out []string
	switch v.(type) {
	case UserType:
		for _, x := range UserTypes() {
			out = append(out, string(x))
		}
	case Industry:
		for _, x := range Industries() {
			out = append(out, string(x))
		}
	case EventFormat:
		for _, x := range EventFormats() {
			out = append(out, string(x))
		}
	case StartupStage:
		for _, x := range StartupStages() {
			out = append(out, string(x))
		}
	case Challenge:
		for _, x := range Challenges() {
			out = append(out, string(x))
		}
	}
	return out
}
