package career

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidCatalog = errors.New("invalid career catalog")
	ErrUnknownCareer  = errors.New("unknown career")
	ErrUnknownSkill   = errors.New("unknown skill")
)
