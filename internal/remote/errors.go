package remote

import (
	"fmt"
	"strings"
)

// RequestError represents a transport or server failure. It is
// retryable from the caller's point of view.
type RequestError struct {
	Method  string
	Path    string
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("remote %s %s: %s: %v", e.Method, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("remote %s %s: %s", e.Method, e.Path, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// NotFoundError indicates the requested document does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("remote resource not found: %s", e.Path)
}

// RemoteFieldError is one field rejection in a server validation response.
type RemoteFieldError struct {
	Index   int
	Field   string
	Message string
}

// ValidationError indicates the server rejected a section payload.
// The sync controller validates before sending, so seeing one of these
// means client and server schemas disagree.
type ValidationError struct {
	Message string
	Fields  []RemoteFieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("remote validation failed")
	if e.Message != "" {
		sb.WriteString(": " + e.Message)
	}
	for _, f := range e.Fields {
		fmt.Fprintf(&sb, "; [%d].%s: %s", f.Index, f.Field, f.Message)
	}
	return sb.String()
}
