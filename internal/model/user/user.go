// Package user defines the user registration record.
package user

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/intake/internal/validation"
)

// CreateUserPayload is the body of POST /users.
type CreateUserPayload struct {
	Username        *string `json:"username" validate:"required,min=3,max=20,nospaces"`
	Email           *string `json:"email" validate:"required,emailish"`
	Password        *string `json:"password" validate:"required,min=8,digitifalpha"`
	ConfirmPassword *string `json:"confirm_password" validate:"required"`
}

// User is a validated, normalized registration.
type User struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (p *CreateUserPayload) Validate(v *validation.Validator) error {
	return v.Validate(p, p.passwordsMatch)
}

func (p *CreateUserPayload) passwordsMatch() string {
	if *p.Password != *p.ConfirmPassword {
		return "passwords do not match"
	}
	return ""
}

// Normalize returns the record with the username lowercased. It must only be
// called on a payload that passed Validate.
func (p *CreateUserPayload) Normalize() User {
	return User{
		Username:        cases.Lower(language.Und).String(*p.Username),
		Email:           *p.Email,
		Password:        *p.Password,
		ConfirmPassword: *p.ConfirmPassword,
	}
}

// CreatedResponse confirms an accepted registration.
type CreatedResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
