package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingToken = errors.New("auth token is empty")
	ErrTokenExpired = errors.New("auth token expired")
)

// StatusError is returned for any non-2xx backend response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code from %s %s: %d", e.Method, e.Path, e.StatusCode)
}

func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
