package maths

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// DecodeNumbers decodes a JSON array of numbers, for example '[1, 2.5, -3e2]', preserving element order.
//
// Anything other than an array containing only numbers results in a '*DecodeError'; this includes 'null' elements and
// numeric strings. An empty array results in an empty, non-nil slice.
func DecodeNumbers(data []byte) ([]float64, error) {
	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, data)

	if next := iter.WhatIsNext(); next != jsoniter.ArrayValue {
		if next == jsoniter.InvalidValue {
			return nil, &DecodeError{reason: "invalid JSON", err: iter.Error}
		}

		return nil, &DecodeError{reason: fmt.Sprintf("expected a JSON array but got %s", typeName(next))}
	}

	numbers := make([]float64, 0)

	for idx := 0; iter.ReadArray(); idx++ {
		switch next := iter.WhatIsNext(); next {
		case jsoniter.NumberValue:
		case jsoniter.InvalidValue:
			return nil, &DecodeError{reason: fmt.Sprintf("invalid JSON at element %d", idx), err: iter.Error}
		default:
			return nil, &DecodeError{reason: fmt.Sprintf("element %d is %s, not a number", idx, typeName(next))}
		}

		number := iter.ReadFloat64()
		if iter.Error != nil {
			return nil, &DecodeError{reason: fmt.Sprintf("invalid number at element %d", idx), err: iter.Error}
		}

		numbers = append(numbers, number)
	}

	if iter.Error != nil {
		return nil, &DecodeError{reason: "invalid JSON array", err: iter.Error}
	}

	// Only whitespace may follow the array, the iterator reports EOF once it has been consumed
	iter.WhatIsNext()

	if !errors.Is(iter.Error, io.EOF) {
		return nil, &DecodeError{reason: "unexpected data after JSON array", err: iter.Error}
	}

	return numbers, nil
}

// SumJSON decodes the given JSON array of numbers and returns their sum, see 'DecodeNumbers' and 'Sum'.
func SumJSON(data []byte) (float64, error) {
	numbers, err := DecodeNumbers(data)
	if err != nil {
		return 0, err
	}

	return Sum(numbers), nil
}

// typeName returns a human readable name for a JSON value type, for use in error messages.
func typeName(vt jsoniter.ValueType) string {
	switch vt {
	case jsoniter.StringValue:
		return "a string"
	case jsoniter.NumberValue:
		return "a number"
	case jsoniter.NilValue:
		return "null"
	case jsoniter.BoolValue:
		return "a boolean"
	case jsoniter.ArrayValue:
		return "an array"
	case jsoniter.ObjectValue:
		return "an object"
	}

	return "an invalid value"
}
