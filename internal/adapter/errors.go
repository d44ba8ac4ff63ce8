package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrMalformedResponse is returned when a decrypted download payload is
	// not a JSON document.
	ErrMalformedResponse = errors.New("malformed vendor response")
)

// AuthError is returned by Login. Reason is the vendor's UserStatus when the
// server provided one.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth failed: %s: %v", e.Reason, e.Err)
	}
	return "auth failed: " + e.Reason
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// TransportError is returned by Download when the request could not be
// completed. Status is zero when no HTTP response was received.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("download transport error: %v", e.Err)
	}
	return fmt.Sprintf("download failed with http %d: %v", e.Status, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
