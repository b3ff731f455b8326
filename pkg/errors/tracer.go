package errors

import "github.com/pkg/errors"

// StackTracer is implemented by errors that carry a stack trace.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorTracer pairs a message with an underlying error that has a stack
// trace attached, so the logger can surface where a defect originated.
type ErrorTracer struct {
	Message string
	Err     error
}

// TracerFromError wraps an existing error, capturing a stack trace at the
// call site unless the error already carries one.
func TracerFromError(err error) *ErrorTracer {
	wrapped := err
	if _, ok := err.(StackTracer); !ok {
		wrapped = errors.WithStack(err)
	}
	return &ErrorTracer{
		Message: err.Error(),
		Err:     wrapped,
	}
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack trace of the underlying error.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if errWithStack, ok := e.Unwrap().(StackTracer); ok {
		return errWithStack.StackTrace()
	}
	return nil
}
