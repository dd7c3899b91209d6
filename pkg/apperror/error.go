package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so callers can decide how to surface it.
type Kind string

const (
	KindNetwork     Kind = "network"
	KindAuth        Kind = "auth"
	KindForbidden   Kind = "forbidden"
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindRateLimited Kind = "rate_limited"
	KindServer      Kind = "server"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Validation(message string, err error) *AppError {
	return New(http.StatusUnprocessableEntity, KindValidation, message, err)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindAuth, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, KindRateLimited, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindServer, "Internal Server Error", err)
}

// Network wraps a transport failure (DNS, refused connection, timeout).
func Network(err error) *AppError {
	return New(http.StatusBadGateway, KindNetwork, "Network Error", err)
}

// FromStatus maps an upstream HTTP status to an AppError. An empty
// message falls back to the generic status wording.
func FromStatus(status int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("Request failed with status code %d", status)
	}

	switch {
	case status == http.StatusUnauthorized:
		return New(status, KindAuth, message, nil)
	case status == http.StatusForbidden:
		return New(status, KindForbidden, message, nil)
	case status == http.StatusNotFound:
		return New(status, KindNotFound, message, nil)
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity, status == http.StatusConflict:
		return New(status, KindValidation, message, nil)
	case status == http.StatusTooManyRequests:
		return New(status, KindRateLimited, message, nil)
	default:
		return New(status, KindServer, message, nil)
	}
}

// KindOf reports the Kind of err, or KindServer for foreign errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindServer
}

func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}
