package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

const noResponseMessage = "No response received from server. Please check your connection."

var ErrUnknownEndpoint = errors.New("unknown legal api endpoint")

// NetworkError means no response came back at all.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: no response: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UpstreamError is a non-2xx answer. Detail is what the user sees.
type UpstreamError struct {
	Endpoint string
	Status   int
	Detail   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.Status, e.Detail)
}

// DecodeError is a 2xx answer that is not JSON.
type DecodeError struct {
	Endpoint string
	Body     string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: malformed response", e.Endpoint)
}

// ValidationError is raised before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missing(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

// UserMessage maps a client error to the text shown next to the request.
func UserMessage(err error) string {
	var (
		vErr *ValidationError
		nErr *NetworkError
		uErr *UpstreamError
		dErr *DecodeError
	)
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.As(err, &nErr):
		return noResponseMessage
	case errors.As(err, &uErr):
		return uErr.Detail
	case errors.As(err, &dErr):
		return "The server returned a response that could not be read."
	case errors.Is(err, ErrUnknownEndpoint):
		return "Unknown operation."
	default:
		return "Unexpected error: " + err.Error()
	}
}

// HTTPStatus picks the status LexGate answers with for a client error.
func HTTPStatus(err error) int {
	var (
		vErr *ValidationError
		nErr *NetworkError
	)
	switch {
	case errors.As(err, &vErr), errors.Is(err, ErrUnknownEndpoint):
		return http.StatusBadRequest
	case errors.As(err, &nErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
