package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for any login failure; callers get one
	// indistinct message whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidInput is returned when a required field is empty after trimming.
	ErrInvalidInput = errors.New("name and email are required")
	// ErrEmailTaken is returned when an email already belongs to a different user.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrAlreadyPaid is returned when fees were paid before; the flag never unsets.
	ErrAlreadyPaid = errors.New("fees already paid")
	// ErrNotFound is returned when no user matches the given id.
	ErrNotFound = errors.New("user not found")
)
