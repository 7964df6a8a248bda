package catalog

import (
	"errors"
	"fmt"
)

// User-visible messages of the error region.
const (
	LoadErrorMessage = "Error loading beverages"
	addErrorPrefix   = "Error adding beverage: "
)

// LoadFailure is returned when the catalog cannot be fetched: a transport
// error (Err set) or a non-2xx status (StatusCode set).
type LoadFailure struct {
	StatusCode int
	Err        error
}

func (e *LoadFailure) Error() string {
	switch {
	case e.Err != nil:
		return "Failed to load beverages: " + e.Err.Error()
	case e.StatusCode != 0:
		return fmt.Sprintf("Failed to load beverages: unexpected response status: %d", e.StatusCode)
	default:
		return "Failed to load beverages"
	}
}

func (e *LoadFailure) Unwrap() error { return e.Err }

// AddFailure is returned when creating a beverage does not answer 200 or 201,
// or its response cannot be read.
type AddFailure struct {
	StatusCode int
	Err        error
}

func (e *AddFailure) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("Unexpected response status: %d", e.StatusCode)
}

func (e *AddFailure) Unwrap() error { return e.Err }

// AddErrorMessage renders the error region text for a failed add.
func AddErrorMessage(err error) string {
	return addErrorPrefix + err.Error()
}

// ValidationError is returned when strict coercion rejects an input.
type ValidationError struct {
	Field string
	Value string
	Kind  FieldKind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %q is not a valid %s", e.Field, e.Value, e.Kind)
}

// IsLoadFailure reports whether err wraps a LoadFailure.
func IsLoadFailure(err error) bool {
	var lf *LoadFailure
	return errors.As(err, &lf)
}

// IsAddFailure reports whether err wraps an AddFailure.
func IsAddFailure(err error) bool {
	var af *AddFailure
	return errors.As(err, &af)
}
