// Package validation holds field-level input checks shared by services
// and handlers. A failed check is always a *validation.Error carrying the
// offending field names, so callers can tell bad input apart from storage
// failures.
package validation

import (
	"fmt"
	"slices"
	"strings"
)

// Error reports caller-supplied data that failed a required-field or
// enum-membership check. Fields maps field name to reason.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
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

// NewError builds a single-field validation error.
func NewError(field, reason string) *Error {
	return &Error{Fields: map[string]string{field: reason}}
}

// Check accumulates field failures and yields one Error (or nil).
type Check struct {
	fields map[string]string
}

func (c *Check) fail(field, reason string) {
	if c.fields == nil {
		c.fields = map[string]string{}
	}
	c.fields[field] = reason
}

// Required fails when value is empty after trimming.
func (c *Check) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.fail(field, "is required")
	}
}

// OneOf fails when value is not a member of the closed set. An empty
// value is also a failure; use OneOfOptional for defaultable enums.
func (c *Check) OneOf(field, value string, allowed []string) {
	if !slices.Contains(allowed, value) {
		c.fail(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	}
}

// OneOfOptional is OneOf but tolerates an empty value.
func (c *Check) OneOfOptional(field, value string, allowed []string) {
	if value == "" {
		return
	}
	c.OneOf(field, value, allowed)
}

// Err returns the accumulated *Error, or nil when every check passed.
func (c *Check) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &Error{Fields: c.fields}
}
