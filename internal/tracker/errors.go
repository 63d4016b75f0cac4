package tracker

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError wraps a network-level failure (connection refused, DNS,
// timeout) talking to the tracker. The request may or may not have reached it.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tracker transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError is a non-2xx response from the tracker.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("tracker responded %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound
}
