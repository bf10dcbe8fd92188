package apperror

import (
	"net/http"
	"strings"
)

// Error is an application error that carries the HTTP status code it should
// be rendered with. Validation failures may carry one message per field.
type Error struct {
	Code     int
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

// MessagePayload returns the value rendered into the response envelope's
// "message" field: a bare string for a single message, a list otherwise.
func (e *Error) MessagePayload() any {
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}
	return e.Messages
}

func New(code int, messages ...string) *Error {
	return &Error{Code: code, Messages: messages}
}

func Validation(messages ...string) *Error {
	return New(http.StatusBadRequest, messages...)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, "Internal Server Error, "+message)
}

var (
	ErrInvalidInput        = Validation("invalid input")
	ErrUserAlreadyExists   = New(http.StatusBadRequest, "User already exists")
	ErrInvalidCredentials  = Unauthorized("Invalid credentials")
	ErrTokenExpired        = Unauthorized("Unauthorized: Token has expired")
	ErrTokenInvalid        = Unauthorized("Unauthorized: Invalid token")
	ErrRefreshTokenExpired = Unauthorized("Unauthorized: Refresh token has expired")
	ErrInvalidTokenFormat  = Forbidden("Access denied: invalid token format")
	ErrNoteNotFound        = NotFound("Note not found")
	ErrNoNotesFound        = NotFound("No Notes found")
)
