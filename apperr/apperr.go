// Package apperr carries domain failures across the service/handler
// boundary together with the HTTP status they map to.
package apperr

import "net/http"

type Error struct {
	Status  int
	Message string
	// Fields holds per-field validation messages for 422 responses.
	Fields map[string]string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Validation reports malformed or out-of-range input, including failed
// existence references. Maps to 422.
func Validation(message string, fields map[string]string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: message, Fields: fields}
}

// NotFound reports an id that does not resolve. Maps to 404.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// InvalidState reports a domain-rule violation such as cancelling a
// completed order. Maps to 400.
func InvalidState(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized reports failed authentication. Maps to 401.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}
