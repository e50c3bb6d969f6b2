package errors

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// FromHTTPStatus maps a non-2xx response from the store API to an AppError.
// Message is the API's own error text when it sent one.
func FromHTTPStatus(status int, message string) *AppError {
	message = strings.TrimSpace(message)
	code := codeForStatus(status)
	if message == "" {
		message = defaultMessage(code)
	}
	return &AppError{Code: code, Message: message}
}

func codeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case status == http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case status == http.StatusForbidden:
		return ErrCodeForbidden
	case status == http.StatusNotFound, status == http.StatusGone:
		return ErrCodeNotFound
	case status == http.StatusConflict:
		return ErrCodeConflict
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return ErrCodeTimeout
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

func defaultMessage(code ErrorCode) string {
	switch code {
	case ErrCodeValidation:
		return "The request was rejected."
	case ErrCodeUnauthorized:
		return "Your session has expired. Please sign in again."
	case ErrCodeForbidden:
		return "You do not have permission to do that."
	case ErrCodeNotFound:
		return "Not found."
	case ErrCodeConflict:
		return "That change conflicts with existing data."
	case ErrCodeTimeout:
		return "The store took too long to respond."
	case ErrCodeUnavailable:
		return "The store is temporarily unavailable."
	default:
		return "Unexpected response from the store."
	}
}

// FromTransport classifies a client-side failure (no HTTP response).
// Context cancellation and deadlines keep their identity; anything else is Unavailable.
func FromTransport(err error) *AppError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.Canceled):
		return Wrap(err, ErrCodeCanceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrCodeTimeout, "request timed out")
	default:
		return Wrap(err, ErrCodeUnavailable, "store API unreachable")
	}
}

// HTTPStatus is the status this application should answer with for err.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeValidation:
		return http.StatusUnprocessableEntity
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
