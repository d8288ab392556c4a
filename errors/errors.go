package errors

import "fmt"

var (
	ErrInvalidArgument    = fmt.Errorf("invalid argument")
	ErrConnectionClosed   = fmt.Errorf("connection closed")
	ErrHandlerFailure     = fmt.Errorf("handler failure")
	ErrArgumentOutOfRange = fmt.Errorf("argument index out of range")
	ErrNilSnippet         = fmt.Errorf("one of the snippets is nil")
	ErrMalformedContent   = fmt.Errorf("malformed message content")
	ErrAlreadyStarted     = fmt.Errorf("console already started")
	ErrConsoleClosed      = fmt.Errorf("console closed")
)

// Recovered turns a value caught by recover into an ErrHandlerFailure.
func Recovered(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: panic: %w", ErrHandlerFailure, err)
	}
	return fmt.Errorf("%w: panic: %v", ErrHandlerFailure, r)
}
