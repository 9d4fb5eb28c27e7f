package services

import "errors"

// Service-level errors. Handlers match these with errors.Is and translate
// them into HTTP responses; nothing here is fatal to the process.
var (
	// ErrProductNotFound is returned for an unknown product id.
	ErrProductNotFound = errors.New("product not found")
	// ErrUnauthorized is returned when an operation requires a logged-in user.
	ErrUnauthorized = errors.New("not authenticated")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is returned for a failed login. It deliberately
	// does not reveal whether the username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
