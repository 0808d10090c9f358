// Package apperr defines the error kinds shared by all services. Every
// business-rule rejection is deterministic and carries exactly one kind,
// which the HTTP layer maps to a status code.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failed operation.
type Kind int

const (
	// KindNotFound means a referenced id, title, or composite key does not
	// resolve to a stored entity.
	KindNotFound Kind = iota
	// KindBadRequest means structurally invalid input or a business rule
	// violation about when/what (event full, already started, duplicate
	// registration, game unavailable).
	KindBadRequest
	// KindForbidden means the caller's role or relationship does not entitle
	// them to the operation.
	KindForbidden
	// KindConflict means a uniqueness or state-transition invariant would be
	// violated.
	KindConflict
	// KindUnauthorized means the caller failed to prove who they are.
	KindUnauthorized
)

// Error is the single error type surfaced by service operations.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequest builds a KindBadRequest error.
func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Forbidden builds a KindForbidden error.
func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a KindConflict error.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized builds a KindUnauthorized error.
func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, unwrapping as needed. The second return
// is false when err is not an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// IsNotFound reports whether err is a KindNotFound error.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsBadRequest reports whether err is a KindBadRequest error.
func IsBadRequest(err error) bool { return IsKind(err, KindBadRequest) }

// IsForbidden reports whether err is a KindForbidden error.
func IsForbidden(err error) bool { return IsKind(err, KindForbidden) }

// IsConflict reports whether err is a KindConflict error.
func IsConflict(err error) bool { return IsKind(err, KindConflict) }
