package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// RefOf returns a pointer for the specified value
func RefOf[T any](value T) *T {
	return &value
}

// Converts a pointer to a value type
// If the ptr is nil returns default value, otherwise the value of the pointer
func ToValueWithDefault[T any](ptr *T, defaultValue T) T {
	if ptr == nil {
		return defaultValue
	}

	if str, ok := any(ptr).(*string); ok && *str == "" {
		return defaultValue
	}

	return *ptr
}

// ToHttpRequestBody marshals the specified value as a JSON request body.
func ToHttpRequestBody(value any) (io.ReadSeekCloser, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to convert value to json: %w", err)
	}

	return readSeekCloser{bytes.NewReader(jsonValue)}, nil
}

type readSeekCloser struct {
	*bytes.Reader
}

func (readSeekCloser) Close() error {
	return nil
}
