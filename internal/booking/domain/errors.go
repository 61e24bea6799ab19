package domain

import (
	"errors"
	"net/http"
)

// ErrorKind classifies a business-rule failure.
type ErrorKind string

const (
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindBadRequest ErrorKind = "bad_request"
	ErrorKindConflict   ErrorKind = "conflict"
)

// Error is a business-rule failure returned as a value by every use-case.
// StatusCode is a hint for transport layers; the domain never writes HTTP
// responses itself.
type Error struct {
	Kind       ErrorKind `json:"type"`
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewNotFoundError reports that a referenced entity does not exist.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: ErrorKindNotFound, StatusCode: http.StatusNotFound, Message: message}
}

// NewBadRequestError reports input rejected by a business rule.
func NewBadRequestError(message string) *Error {
	return &Error{Kind: ErrorKindBadRequest, StatusCode: http.StatusBadRequest, Message: message}
}

// NewConflictError reports a uniqueness violation.
func NewConflictError(message string) *Error {
	return &Error{Kind: ErrorKindConflict, StatusCode: http.StatusConflict, Message: message}
}

// AsError unwraps err into a domain *Error when it is one.
func AsError(err error) (*Error, bool) {
	var domainErr *Error
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}

func isKind(err error, kind ErrorKind) bool {
	domainErr, ok := AsError(err)
	return ok && domainErr.Kind == kind
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	return isKind(err, ErrorKindNotFound)
}

// IsBadRequest reports whether err is a bad-request domain error.
func IsBadRequest(err error) bool {
	return isKind(err, ErrorKindBadRequest)
}

// IsConflict reports whether err is a conflict domain error.
func IsConflict(err error) bool {
	return isKind(err, ErrorKindConflict)
}
