package domain

import "errors"

var (
	// ErrAuthenticationFailed covers both unknown username and wrong
	// password. Callers must not distinguish the two.
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrDuplicateIdentity    = errors.New("username already registered")
	// ErrInvalidToken is internal to the auth path; a request carrying a bad
	// token proceeds as anonymous and is never told why.
	ErrInvalidToken   = errors.New("invalid token")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrInvalidRole    = errors.New("invalid role")
	ErrAlreadyJoined  = errors.New("already joined event")
	ErrNotParticipant = errors.New("not a participant of event")
	ErrDuplicateGuest = errors.New("guest already invited to event")
)
