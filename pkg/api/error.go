package api

import "net/http"

// Error represents an error that occurred while handling a request.
// Details, when present, are rendered as a list next to the message.
type Error struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *Error) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: message}
}

func NewUnprocessableEntityError(message string, details ...string) *Error {
	return &Error{StatusCode: http.StatusUnprocessableEntity, Message: message, Details: details}
}

func NewInternalServerError(message string) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Message: message}
}

func NewTooManyRequests(message string) *Error {
	return &Error{StatusCode: http.StatusTooManyRequests, Message: message}
}
