package services

import "errors"

var (
	// ErrValidation marks a request whose fields fail the schema minimums.
	// Handlers map it to a 400 response.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
