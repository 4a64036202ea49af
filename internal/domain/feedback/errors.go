package feedback

import "errors"

var (
	ErrSessionNotFound = errors.New("feedback session not found")
	ErrUnknownStatus   = errors.New("unknown feedback status")
)
