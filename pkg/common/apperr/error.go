package apperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// AppError is a coded application error. Two AppErrors match under
// errors.Is when their codes are equal.
type AppError struct {
	Code    int
	Message string
	Cause   error
}

// New creates an AppError. The cause, if any, gets a stack trace attached.
func New(code int, msg string, cause error) *AppError {
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	return &AppError{Code: code, Message: msg, Cause: cause}
}

// Wrap wraps err into an AppError. Returns nil when err is nil.
func Wrap(err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, err)
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Code extracts the code of the first AppError in err's chain, or 0.
func Code(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return 0
}
