// Package validator checks submitted signup and login form fields.
// Validation is pure: it inspects the raw form values and never touches
// the credential store.
package validator

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern matches a plausible email address.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 5

// FieldError describes a single validation failure attached to a form field.
type FieldError struct {
	// Field is the form field the error applies to.
	Field string
	// Message describes why the field was rejected.
	Message string
}

// SignupForm is a validated signup payload.
type SignupForm struct {
	Email       string
	Password    string
	ConfirmPass string
}

// LoginForm is a validated login payload.
type LoginForm struct {
	Email    string
	Password string
}

// ValidateSignup checks the raw signup form values. It returns the typed
// payload and a list of field errors; the payload is only meaningful when
// the error list is empty.
func ValidateSignup(form url.Values) (SignupForm, []FieldError) {
	payload := SignupForm{
		Email:       strings.TrimSpace(form.Get("email")),
		Password:    form.Get("password"),
		ConfirmPass: form.Get("confirmPass"),
	}

	var errs []FieldError
	errs = appendEmailErrors(errs, "email", payload.Email)
	errs = appendPasswordErrors(errs, "password", payload.Password)
	errs = appendPasswordErrors(errs, "confirmPass", payload.ConfirmPass)

	// Cross-field rule: both passwords must match.
	if payload.Password != payload.ConfirmPass {
		errs = append(errs, FieldError{Field: "confirm_pass", Message: "passwords do not match"})
	}

	return payload, errs
}

// ValidateLogin checks the raw login form values. It returns the typed
// payload and a list of field errors; the payload is only meaningful when
// the error list is empty.
func ValidateLogin(form url.Values) (LoginForm, []FieldError) {
	payload := LoginForm{
		Email:    strings.TrimSpace(form.Get("email")),
		Password: form.Get("password"),
	}

	var errs []FieldError
	errs = appendEmailErrors(errs, "email", payload.Email)
	errs = appendPasswordErrors(errs, "password", payload.Password)

	return payload, errs
}

func appendEmailErrors(errs []FieldError, field, email string) []FieldError {
	if !emailPattern.MatchString(email) {
		errs = append(errs, FieldError{Field: field, Message: "must be a valid email address"})
	}
	return errs
}

// appendPasswordErrors enforces the password rule: at least five characters,
// containing at least one uppercase letter A-Z and one digit 0-9. Length is
// counted in characters, not bytes, so multi-byte runes count once.
func appendPasswordErrors(errs []FieldError, field, password string) []FieldError {
	if utf8.RuneCountInString(password) < minPasswordLen {
		errs = append(errs, FieldError{Field: field, Message: "must be at least 5 characters"})
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasDigit {
		errs = append(errs, FieldError{Field: field, Message: "must contain an uppercase letter and a digit"})
	}

	return errs
}
