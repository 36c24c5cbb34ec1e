package contract

import "errors"

var (
	ErrModelInvoke    = errors.New("model invoke failed")
	ErrEmptyMessage   = errors.New("message is empty")
	ErrTurnInFlight   = errors.New("a conversation turn is already running")
	ErrRoundsExceeded = errors.New("tool-call round limit exceeded")
)
