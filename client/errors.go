package client

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrNoSession means no user session was supplied; no network call
	// is attempted.
	ErrNoSession = errors.New("no active session")

	// ErrNotFound means the server has no matching row owned by the
	// caller. Kept distinct from RequestError so callers can say "this
	// goal no longer exists" instead of "something went wrong".
	ErrNotFound = errors.New("not found")
)

// ValidationError reports caller-supplied data rejected before or by the
// server; never retried, never recovered from cache.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// RequestError is a failed round-trip: transport failure, non-success
// response, or an unparseable body.
type RequestError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
