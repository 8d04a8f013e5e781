// Package bridge holds what every service bridge shares: one error type that
// wraps transport, remote and parse failures, and the helpers used to classify it.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Kind is a coarse-grained categorization of bridge failures.
type Kind string

const (
	KindTransport    Kind = "transport"
	KindRemote       Kind = "remote"
	KindParse        Kind = "parse"
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"
)

// Error is returned by every bridge operation. It names the bridge and the
// operation that failed and wraps the underlying cause.
type Error struct {
	Bridge string
	Op     string
	Kind   Kind
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s.%s: %s", e.Bridge, e.Op, e.Kind)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StatusError reports a non-2xx answer from a remote service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// New builds an Error of the given kind.
func New(bridgeName, op string, kind Kind, err error) error {
	return &Error{Bridge: bridgeName, Op: op, Kind: kind, Err: err}
}

// Wrap classifies err and wraps it. Errors that already are bridge errors are
// returned unchanged so the innermost operation name survives.
func Wrap(bridgeName, op string, err error) error {
	if err == nil {
		return nil
	}
	var be *Error
	if errors.As(err, &be) {
		return err
	}
	return &Error{Bridge: bridgeName, Op: op, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	var se *StatusError
	switch {
	case errors.As(err, &se):
		if se.StatusCode == http.StatusNotFound {
			return KindNotFound
		}
		return KindRemote
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindTransport
	default:
		return KindTransport
	}
}

// IsKind helps callers classify errors without depending on a specific bridge.
func IsKind(err error, kind Kind) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

// IsNotFound reports whether err means the remote record does not exist.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound) || errors.Is(err, ErrNotFound)
}
