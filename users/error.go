package users

import "errors"

var (
	// ErrUserNotFound is returned when the user does not
	// exists or was not found given the search parameters.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUser is returned when the user given is not valid
	ErrInvalidUser = errors.New("invalid user")
	// ErrNoPassword is returned when saving a user that
	// has no password hash.
	ErrNoPassword = errors.New("no password")
)
