// Package validation adapts go-playground/validator to echo's Validator
// interface and registers the custom rules the DTOs use.
package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: NewValidate()}
}

// NewValidate builds a validator with the "password" rule registered, for
// callers that validate structs directly instead of through echo.
func NewValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("password", Password)
	return v
}

func (v *Validator) Validate(i any) error {
	return v.v.Struct(i)
}

// Passwords are at least 4 characters from the set below and must mix a
// letter, a digit and a special character.
var passwordChars = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]{4,}$`)

func Password(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !passwordChars.MatchString(s) {
		return false
	}
	var letter, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return letter && digit && special
}
