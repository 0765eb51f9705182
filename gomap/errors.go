package gomap

import (
	"errors"
	"fmt"
)

var ErrRange = errors.New("value out of range")

// MarshalError represents an error during conversion to a data-file value.
type MarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during conversion from a data-file value.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// TypeError represents a value whose type does not fit the Go destination.
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("type error: %s", msg)
}
