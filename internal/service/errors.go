package service

import "net/http"

// APIError is a service-level error carrying the HTTP status the handler
// layer should answer with. Anything that is not an *APIError surfaces as a
// generic 500 without leaking internals.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func BadRequest(msg string) error {
	return &APIError{Status: http.StatusBadRequest, Message: msg}
}

func NotFound(msg string) error {
	return &APIError{Status: http.StatusNotFound, Message: msg}
}

func Unauthorized(msg string) error {
	return &APIError{Status: http.StatusUnauthorized, Message: msg}
}
