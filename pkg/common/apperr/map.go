package apperr

import (
	"fmt"
)

// Generic Action Messages
const (
	MsgEnqueueFailed = "failed to enqueue"
	MsgDequeueFailed = "failed to dequeue"
	MsgInitFailed    = "failed to initialize"
	MsgReadFailed    = "failed to read"
	MsgConfigInvalid = "invalid configuration"
)

// MapError wraps an error with a standardized message"
func MapError(scope string, err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", scope, msg)
	return Wrap(err, code, formattedMsg)
}

// NewError creates a new AppError with standardized message format
func NewError(scope string, code int, msg string, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", scope, msg)
	return New(code, formattedMsg, cause)
}
