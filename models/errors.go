// models/errors.go
package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rejected operation so callers can branch on it
// without parsing messages.
type ErrorKind string

const (
	// KindValidation: malformed input, rejected before any mutation.
	KindValidation ErrorKind = "validation"
	// KindNotFound: the referenced equipment id is not in the catalog.
	KindNotFound ErrorKind = "not_found"
	// KindNotAllowed: the category rule or current availability denies the request.
	KindNotAllowed ErrorKind = "not_allowed"
	// KindConflict: the mutation would break a stock invariant.
	KindConflict ErrorKind = "conflict"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NotAllowedf(format string, args ...any) *Error {
	return &Error{Kind: KindNotAllowed, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the ErrorKind of err, or "" for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
