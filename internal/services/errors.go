package services

import "errors"

// Domain errors surfaced to the HTTP layer. Handlers map these to status
// codes; anything else is an opaque internal error.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrItemNotFound       = errors.New("item not found")
)
