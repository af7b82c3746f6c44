package backend

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized marks a 401 from the backend. The web layer treats it
// globally: session destroyed, browser sent to /login.
var ErrUnauthorized = errors.New("backend: unauthorized")

// StatusError captures a non-2xx backend response for local handling by callers.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("backend %s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("backend %s: unexpected status %d: %s", e.Endpoint, e.StatusCode, body)
}

// Is reports ErrUnauthorized for 401 responses so callers can use errors.Is.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
