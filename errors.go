package pickr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pickr package.
var (
	// ErrOutOfRange is returned when a color component lies outside its domain.
	ErrOutOfRange = errors.New("pickr: value out of range")

	// ErrNilView is returned by New when no view is provided.
	ErrNilView = errors.New("pickr: view cannot be nil")

	// ErrMissingControl is returned by New when an enabled control has no
	// handle or track.
	ErrMissingControl = errors.New("pickr: missing control")

	// ErrInvalidOption is returned for unknown alignment or format names and
	// for unparsable default colors in configuration files.
	ErrInvalidOption = errors.New("pickr: invalid option")
)

// RangeError describes a rejected color component.
type RangeError struct {
	Field    string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("pickr: %s %v outside [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// Unwrap allows errors.Is(err, ErrOutOfRange).
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
