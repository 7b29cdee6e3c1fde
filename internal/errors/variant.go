package errors

import (
	"errors"
	"fmt"
)

// UnknownVariantError is returned when a kind tag does not name a book variant.
type UnknownVariantError struct {
	Tag string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown book type %q", e.Tag)
}

// NewUnknownVariantError creates an UnknownVariantError for the given tag.
func NewUnknownVariantError(tag string) *UnknownVariantError {
	return &UnknownVariantError{Tag: tag}
}

// IsUnknownVariantError reports whether err is an UnknownVariantError (even when wrapped).
func IsUnknownVariantError(err error) bool {
	var target *UnknownVariantError
	return errors.As(err, &target)
}

// MissingFieldError is returned when a field bag lacks a required field,
// or carries it with an unusable value.
type MissingFieldError struct {
	Field  string
	Reason string // empty when the field is absent
}

func (e *MissingFieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("missing required field %q", e.Field)
}

// NewMissingFieldError creates a MissingFieldError for an absent field.
func NewMissingFieldError(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

// NewInvalidFieldError creates a MissingFieldError for a field that is present
// but cannot be used as the required type.
func NewInvalidFieldError(field, reason string) *MissingFieldError {
	return &MissingFieldError{Field: field, Reason: reason}
}

// IsMissingFieldError reports whether err is a MissingFieldError (even when wrapped).
func IsMissingFieldError(err error) bool {
	var target *MissingFieldError
	return errors.As(err, &target)
}

// BuilderMismatchError is returned when a director recipe runs against
// a builder for a different variant.
type BuilderMismatchError struct {
	Recipe string
	Want   string
	Got    string
}

func (e *BuilderMismatchError) Error() string {
	return fmt.Sprintf("recipe %s needs a %s builder, have %s", e.Recipe, e.Want, e.Got)
}

// NewBuilderMismatchError creates a BuilderMismatchError.
func NewBuilderMismatchError(recipe, want, got string) *BuilderMismatchError {
	return &BuilderMismatchError{Recipe: recipe, Want: want, Got: got}
}

// IsBuilderMismatchError reports whether err is a BuilderMismatchError (even when wrapped).
func IsBuilderMismatchError(err error) bool {
	var target *BuilderMismatchError
	return errors.As(err, &target)
}
