package users

import "errors"

var (
	// ErrValidation is returned when a request fails field validation
	ErrValidation = errors.New("validation failed")
	// ErrConflict is returned when a username or email is already taken
	ErrConflict = errors.New("username or email already taken")
	// ErrNotFound is returned when no user matches
	ErrNotFound = errors.New("user not found")
	// ErrNotAuthenticated is returned for an unknown username or a wrong password
	ErrNotAuthenticated = errors.New("invalid username or password")
)
