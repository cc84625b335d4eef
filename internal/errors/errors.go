// Package errors provides shared error types for the Confluence client.
package errors

import (
	"fmt"
)

// NotFoundError indicates a page or space was not found in Confluence.
type NotFoundError struct {
	EntityType string // "page", "space"
	Identifier string // page ID, title, or space key
	SpaceKey   string // space the lookup was scoped to, if any
}

func (e *NotFoundError) Error() string {
	if e.SpaceKey != "" {
		return fmt.Sprintf("%s not found in space %s: %s", e.EntityType, e.SpaceKey, e.Identifier)
	}
	return fmt.Sprintf("%s not found: %s", e.EntityType, e.Identifier)
}

// NewPageNotFoundError creates a NotFoundError for a page lookup.
func NewPageNotFoundError(identifier, spaceKey string) *NotFoundError {
	return &NotFoundError{
		EntityType: "page",
		Identifier: identifier,
		SpaceKey:   spaceKey,
	}
}

// NewSpaceNotFoundError creates a NotFoundError for a space lookup.
func NewSpaceNotFoundError(key string) *NotFoundError {
	return &NotFoundError{
		EntityType: "space",
		Identifier: key,
	}
}

// ValidationError indicates invalid tool arguments.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
