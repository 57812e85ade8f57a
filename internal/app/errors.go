package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted   = errors.New("service not started")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("not owned by user")
	ErrNoAssessment = errors.New("user has no assessment")
	ErrInvalidInput = errors.New("invalid input")
)
