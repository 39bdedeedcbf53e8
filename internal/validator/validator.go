package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"time"
	"unicode"

	"github.com/CongThang213/MovieHub/api"
	"github.com/go-playground/validator/v10"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

var (
	minAge        = 15
	maxAge        = 120
	hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)
)

const (
	ErrRequired    = "is required"
	ErrEmail       = "must be a valid email address"
	ErrMinLength   = "must be at least %s characters long"
	ErrMaxLength   = "must be at most %s characters long"
	ErrMinValue    = "must be greater than or equal to %s"
	ErrMaxValue    = "must be less than or equal to %s"
	ErrExactLen    = "must be exactly %s characters long"
	ErrAlpha       = "must contain only letters"
	ErrUrl         = "must be a valid URL"
	ErrUnique      = "must not contain duplicate values"
	ErrOneOf       = "must be one of: %s"
	ErrGreaterThan = "must be greater than %s"
	ErrAgeCheck    = "must be at least 15 years old"
	ErrInvalidPassword = "must be at least 8 characters long and include at least one uppercase letter, one lowercase letter, " +
		"one number, and one special character (!@#$%^&*)."
	ErrDefaultInvalid = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("age_check", validateBirthDate)
	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("gender", validateGender)

	// decimal.Decimal is a struct, so numeric rules like gt need its value
	// exposed as a plain number.
	validator.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})

	return validator
}

func decimalToFloat(field reflect.Value) any {
	value, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	f, _ := value.Float64()

	return f
}

func validateGender(fl validator.FieldLevel) bool {
	gender, ok := fl.Field().Interface().(api.Gender)
	if !ok {
		return false
	}

	return gender == api.F || gender == api.M || gender == api.OTHER
}

func validateBirthDate(fl validator.FieldLevel) bool {
	birthDate := fl.Field().Interface().(openapi_types.Date).Time

	today := time.Now()
	age := today.Year() - birthDate.Year()
	if today.YearDay() < birthDate.YearDay() {
		age--
	}

	return age >= minAge && age <= maxAge
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// min and max mean length for strings and collections but magnitude for
// numeric fields, so the message has to follow the field kind.
func isLengthKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		if isLengthKind(err.Kind()) {
			return fmt.Sprintf(ErrMinLength, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		if isLengthKind(err.Kind()) {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGreaterThan, err.Param())
	case "len":
		return fmt.Sprintf(ErrExactLen, err.Param())
	case "alpha":
		return ErrAlpha
	case "url":
		return ErrUrl
	case "unique":
		return ErrUnique
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "age_check":
		return ErrAgeCheck
	case "password":
		return ErrInvalidPassword
	default:
		return ErrDefaultInvalid
	}
}
