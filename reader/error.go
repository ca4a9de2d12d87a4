package reader

import (
	"errors"
	"fmt"
)

// ParseError reports text that does not denote a complete expression.
// Phase names the reader step that failed and Rest holds the unconsumed
// input at that point.
type ParseError struct {
	Phase      string
	Message    string
	Rest       string
	Incomplete bool
	Err        error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Phase
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Rest != "" {
		msg += fmt.Sprintf(": %q", e.Rest)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(phase, message, rest string) error {
	return &ParseError{Phase: phase, Message: message, Rest: rest}
}

func newIncompleteError(phase, message, rest string) error {
	return &ParseError{Phase: phase, Message: message, Rest: rest, Incomplete: true}
}

// IsIncomplete reports whether err was caused by input that ended inside an
// unterminated string or list.
func IsIncomplete(err error) bool {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Incomplete
	}
	return false
}
