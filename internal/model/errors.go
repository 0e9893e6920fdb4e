package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Permission/Access related errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Job application related errors
	ErrJobApplicationNotFound = errors.New("job application not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
