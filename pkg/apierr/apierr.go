// Package apierr classifies errors coming back from the HR bot API without
// tying domain packages to the concrete HTTP client.
package apierr

import (
	"errors"
	"net/http"
)

// StatusCoder is implemented by transport errors that carry an HTTP status.
type StatusCoder interface {
	StatusCode() int
}

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode(), true
	}
	return 0, false
}

// IsClientError reports a 4xx response.
func IsClientError(err error) bool {
	code, ok := StatusCode(err)
	return ok && code >= 400 && code < 500
}

// IsBadRequest reports a 400 response.
func IsBadRequest(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusBadRequest
}

func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

// IsServerError is true for 5xx responses and for failures without any
// response at all (dial errors, timeouts).
func IsServerError(err error) bool {
	if err == nil {
		return false
	}
	code, ok := StatusCode(err)
	return !ok || code >= 500
}
