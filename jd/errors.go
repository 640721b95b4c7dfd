package jd

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only error kind the conversions return.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected input.
type ArgumentError struct {
	Op     string
	Value  any
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument %v (%T): %s", e.Op, e.Value, e.Value, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(op string, value any, reason string) error {
	return &ArgumentError{Op: op, Value: value, Reason: reason}
}
