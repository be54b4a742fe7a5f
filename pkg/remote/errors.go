package remote

import (
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the HR bot API.
type Error struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("api error: %s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	if e.Body != "" {
		msg += " → " + e.Body
	}
	return msg
}

// StatusCode lets apierr classify the failure.
func (e *Error) StatusCode() int { return e.Status }
