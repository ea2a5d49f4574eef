// Package validation checks inbound request bodies before they reach the
// services.
package validation

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/rohits-web03/resumehub/internal/apperr"
)

const minPasswordLength = 8

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	return v
}

type SignUpInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,strongpassword"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileInput carries no validation tags: resume text without a name or
// email is rejected by the profile service.
type ProfileInput struct {
	FileName    string `json:"fileName"`
	FileContent string `json:"fileContent"`
}

// fieldMessages holds the client-facing message for each struct field.
var fieldMessages = map[string]string{
	"FirstName":   "Enter validate names",
	"LastName":    "Enter validate names",
	"Email":       "Enter validate email",
	"Password":    "Enter validate password",
}

// Struct validates v and reports the first failing field as a
// VALIDATION error.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Wrap(apperr.CodeValidation, "invalid input", err)
	}
	first := fieldErrs[0]
	msg, ok := fieldMessages[first.StructField()]
	if !ok {
		msg = strings.ToLower(first.Field()) + " is invalid"
	}
	return apperr.Wrap(apperr.CodeValidation, msg, err)
}

// IsStrongPassword requires at least 8 characters (runes, not bytes) with one lowercase letter,
// one uppercase letter, one digit and one symbol.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || r == ' ':
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
