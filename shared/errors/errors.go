package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Validation means input failed a local invariant (title/content too short,
// missing credential). It never reaches the network.
type Validation struct {
	Message string
}

func (e *Validation) Error() string {
	return e.Message
}

// Fetch means the Remote Feed Store could not be reached at all.
type Fetch struct {
	Message string
}

func (e *Fetch) Error() string {
	return e.Message
}

// Remote means the Remote Feed Store answered with a non-2xx status.
// Message carries the server's own error body when it had one.
type Remote struct {
	Status  int
	Message string
}

func (e *Remote) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote store returned status %d", e.Status)
	}
	return e.Message
}

// Authorization means a mutation the UI believed was permitted was rejected,
// either by the local dual-ownership gate or by the server.
type Authorization struct {
	Message string
}

func (e *Authorization) Error() string {
	return e.Message
}

func IsValidation(err error) bool {
	var v *Validation
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var r *Remote
	return errors.As(err, &r) && r.Status == http.StatusNotFound
}

// StatusCode maps an error from the core to the HTTP status the gateway
// should answer with.
func StatusCode(err error) int {
	var (
		v *Validation
		f *Fetch
		r *Remote
		a *Authorization
	)
	switch {
	case errors.As(err, &v):
		return http.StatusUnprocessableEntity
	case errors.As(err, &a):
		return http.StatusForbidden
	case errors.As(err, &r):
		return r.Status
	case errors.As(err, &f):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
