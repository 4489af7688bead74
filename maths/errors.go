package maths

import "fmt"

// DecodeError is returned when a JSON document can't be decoded into a sequence of numbers.
type DecodeError struct {
	reason string
	err    error
}

func (e *DecodeError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("failed to decode numbers, %s", e.reason)
	}

	return fmt.Sprintf("failed to decode numbers, %s: %v", e.reason, e.err)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}
