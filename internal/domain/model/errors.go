package model

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidStatus = errors.New("invalid recommendation status")
)
