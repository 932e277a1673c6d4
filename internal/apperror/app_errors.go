package apperror

import "errors"

var (
	ErrInvalidDimension  = errors.New("invalid grid dimension")
	ErrNoSpaceForFood    = errors.New("no free cell left for food")
	ErrIllegalTransition = errors.New("game was never reset")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrInvalidScore      = errors.New("invalid score format")
	ErrUnknownStorage    = errors.New("unknown storage driver")
)
