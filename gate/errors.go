package gate

import "errors"

var (
	// ErrUnauthorized means the subject may not perform the action.
	ErrUnauthorized = errors.New("gate: action not permitted")
	// ErrNoPolicyDefined means no policy is registered for the requested
	// resource type.
	ErrNoPolicyDefined = errors.New("gate: no policy registered for resource type")
)
