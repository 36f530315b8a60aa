/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package errs defines the caller-fixable error taxonomy shared by the
// schedule engine: NotFound, Validation, TimeConstraint and InvalidState.
// Anything outside these four kinds is treated as an infrastructure failure
// and propagates unchanged.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a domain error.
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindValidation     Kind = "validation"
	KindTimeConstraint Kind = "time_constraint"
	KindInvalidState   Kind = "invalid_state"
)

// Error is a typed domain error carrying enough context for the caller to
// correct the request (offending day ids, missing collection names).
type Error struct {
	Kind    Kind
	Message string
	// DayIDs names the days violating a time budget, when applicable.
	DayIDs []string
}

func (e *Error) Error() string { return e.Message }

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validationf builds a ValidationError.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// InvalidStatef builds an InvalidState error.
func InvalidStatef(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// TimeConstraint builds a TimeConstraintViolation naming every offending day.
func TimeConstraint(maxHours int, dayIDs []string) *Error {
	return &Error{
		Kind:    KindTimeConstraint,
		Message: fmt.Sprintf("schedule exceeds %dh day budget on day(s) %s", maxHours, strings.Join(dayIDs, ", ")),
		DayIDs:  dayIDs,
	}
}

// KindOf extracts the Kind from err, or "" when err is not a domain error.
func KindOf(err error) Kind {
	var domain *Error
	if errors.As(err, &domain) {
		return domain.Kind
	}
	return ""
}

// IsNotFound reports whether err is a NotFound domain error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsTimeConstraint reports whether err is a TimeConstraintViolation.
func IsTimeConstraint(err error) bool { return KindOf(err) == KindTimeConstraint }

// IsInvalidState reports whether err is an InvalidState error.
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }
