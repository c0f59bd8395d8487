// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/verdelease/leasing-api/app/dto"
)

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", err.Field(), err.Param())
	case "eq":
		return err.Field() + " must be accepted"
	case "phone_digits":
		return "Phone number must contain at least 9 digits"
	default:
		return err.Field() + " is invalid"
	}
}

// collectFieldErrors maps validator errors to per-field messages so the form
// can highlight every failing field at once.
func collectFieldErrors(err error) []dto.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.FieldError{{Field: "request", Message: "Invalid request"}}
	}
	out := make([]dto.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		out = append(out, dto.FieldError{
			Field:   fe.Field(),
			Message: getValidationErrorMessage(fe),
		})
	}
	return out
}

// registerPhoneDigits adds the phone_digits validation: the value must carry
// at least nine decimal digits, ignoring spaces, dashes and a leading plus.
func registerPhoneDigits(v *validator.Validate) {
	_ = v.RegisterValidation("phone_digits", func(fl validator.FieldLevel) bool {
		digits := 0
		for _, r := range fl.Field().String() {
			switch {
			case r >= '0' && r <= '9':
				digits++
			case r == ' ' || r == '-' || r == '+' || r == '(' || r == ')' || r == '.':
				// separators are fine
			default:
				return false
			}
		}
		return digits >= 9
	})
}
