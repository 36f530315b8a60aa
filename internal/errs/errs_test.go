/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "not found", err: NotFoundf("event %s not found", "ev-1"), want: KindNotFound},
		{name: "validation", err: Validationf("no registered athletes"), want: KindValidation},
		{name: "invalid state", err: InvalidStatef("schedule has no days"), want: KindInvalidState},
		{name: "time constraint", err: TimeConstraint(10, []string{"day-1"}), want: KindTimeConstraint},
		{name: "wrapped keeps kind", err: fmt.Errorf("generate: %w", Validationf("no WODs")), want: KindValidation},
		{name: "plain error has no kind", err: errors.New("boom"), want: ""},
		{name: "nil", err: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeConstraintNamesDays(t *testing.T) {
	err := TimeConstraint(10, []string{"day-a", "day-b"})
	if !strings.Contains(err.Error(), "day-a") || !strings.Contains(err.Error(), "day-b") {
		t.Errorf("message %q does not name offending days", err.Error())
	}

	var domain *Error
	if !errors.As(err, &domain) {
		t.Fatal("errors.As failed")
	}
	if len(domain.DayIDs) != 2 {
		t.Errorf("DayIDs = %v, want two entries", domain.DayIDs)
	}
}

func TestPredicates(t *testing.T) {
	if !IsNotFound(NotFoundf("x")) || IsNotFound(Validationf("x")) {
		t.Error("IsNotFound misclassifies")
	}
	if !IsValidation(Validationf("x")) || IsValidation(nil) {
		t.Error("IsValidation misclassifies")
	}
	if !IsTimeConstraint(TimeConstraint(8, nil)) {
		t.Error("IsTimeConstraint misclassifies")
	}
	if !IsInvalidState(InvalidStatef("x")) {
		t.Error("IsInvalidState misclassifies")
	}
}
