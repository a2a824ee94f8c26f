// Package apperr defines the tagged error kinds shared by all components.
// Handlers never inspect provider errors directly; every failure crossing a
// package boundary carries one of these kinds, and the routing layer switches
// on the kind exactly once to pick a status code.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the routing boundary.
type Kind int

const (
	// KindUnknown is the zero value; treated as an upstream failure.
	KindUnknown Kind = iota
	// KindUnauthorized — missing, malformed, or expired credential.
	KindUnauthorized
	// KindBadRequest — invalid input (bad extension, missing claim, bad form).
	KindBadRequest
	// KindForbidden — the file exists but outside the addressed scope.
	KindForbidden
	// KindNotFound — the provider does not know the file id.
	KindNotFound
	// KindConfig — credentials or settings unavailable; fatal at startup.
	KindConfig
	// KindUpstream — any other provider failure; surfaced as 500, not retried.
	KindUpstream
)

// Error is a kind-tagged error. It wraps an optional cause so callers can
// still use errors.Is/errors.As on the chain.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a kind-tagged error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error with a kind and a context message.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from an error chain. Untagged errors report
// KindUnknown, which the routing layer maps to 500.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Unauthorized builds a KindUnauthorized error.
func Unauthorized(format string, args ...any) *Error {
	return New(KindUnauthorized, format, args...)
}

// BadRequest builds a KindBadRequest error.
func BadRequest(format string, args ...any) *Error {
	return New(KindBadRequest, format, args...)
}

// Forbidden builds a KindForbidden error.
func Forbidden(format string, args ...any) *Error {
	return New(KindForbidden, format, args...)
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// Config builds a KindConfig error.
func Config(format string, args ...any) *Error {
	return New(KindConfig, format, args...)
}

// Upstream wraps a provider failure.
func Upstream(err error, format string, args ...any) *Error {
	return Wrap(KindUpstream, err, format, args...)
}
