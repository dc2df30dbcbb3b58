package ddragon

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrFetchFailed means the CDN could not be reached or answered with an error status
	ErrFetchFailed = errors.New("fetch failed")

	// ErrMalformedData means a response could not be parsed or lacked required fields
	ErrMalformedData = errors.New("champion data malformed")

	// ErrIconMissing means an ability icon does not exist or is not a valid image
	ErrIconMissing = errors.New("icon missing")
)

// StatusError describes a non-200 HTTP response
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned status %d", e.URL, e.StatusCode)
}

// Unwrap makes every StatusError match ErrFetchFailed
func (e *StatusError) Unwrap() error {
	return ErrFetchFailed
}

// IsNotFound reports whether err is a 404 response
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// retryable returns true for transport errors and 5xx/429 responses
func retryable(err error) bool {
	if !errors.Is(err, ErrFetchFailed) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= http.StatusInternalServerError || se.StatusCode == http.StatusTooManyRequests
	}
	return true
}
