package auth

import (
	"unicode"

	"moonlight/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRequest carries the account creation input. The login doubles as
// the user's chat signature, so it is constrained to a stable identifier
// shape rather than an email address.
type RegisterRequest struct {
	Login    string `validate:"required,alphanum,min=3,max=32"`
	Password string `validate:"required,min=12,max=72"`
}

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	if !isPasswordComplex(req.Password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

func isPasswordComplex(s string) bool {
	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
