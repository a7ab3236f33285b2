package api

import (
	"errors"
	"fmt"
)

// Sentinels for the statuses callers branch on.
var (
	ErrUnauthorized = errors.New("not authenticated")
	ErrNotFound     = errors.New("not found")
)

// RequestError is returned when the transport fails or the service
// answers with a non-2xx status. Status is 0 for transport failures.
type RequestError struct {
	Status  int
	Message string // server-provided message, if any
	Err     error
}

func (e *RequestError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return fmt.Sprintf("request failed: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("catalog service error %d: %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("catalog service error %d", e.Status)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError is returned when a 2xx response body is not the expected JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decoding response: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }
