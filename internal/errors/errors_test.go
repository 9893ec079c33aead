// Package errors_test
package errors_test

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"landed-cost/internal/errors"
)

func TestErrorFormatting(t *testing.T) {
	err := errors.New(errors.TypeConfig, "missing table")
	if !strings.Contains(err.Error(), "CONFIG_ERROR") || !strings.Contains(err.Error(), "missing table") {
		t.Errorf("Error() = %q", err.Error())
	}

	cause := fmt.Errorf("read failed")
	wrapped := errors.Wrap(errors.TypeConfig, "cannot load", cause)
	if !strings.Contains(wrapped.Error(), "read failed") {
		t.Errorf("wrapped Error() = %q", wrapped.Error())
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("Unwrap chain broken")
	}
}

func TestIsType(t *testing.T) {
	err := errors.Newf(errors.TypeValidation, "bad %s", "field")
	if !errors.IsType(err, errors.TypeValidation) {
		t.Error("IsType missed a matching type")
	}
	if errors.IsType(err, errors.TypeConfig) {
		t.Error("IsType matched the wrong type")
	}
	if errors.IsType(fmt.Errorf("plain"), errors.TypeValidation) {
		t.Error("IsType matched a plain error")
	}
}

func TestValidationRecordsField(t *testing.T) {
	err := errors.Validation("quantity", "must not be negative")
	if !errors.IsValidation(err) {
		t.Fatal("not a validation error")
	}
	if err.Field() != "quantity" {
		t.Errorf("Field() = %q, want quantity", err.Field())
	}
	if !strings.Contains(err.Error(), "quantity") {
		t.Errorf("Error() = %q, want it to name the field", err.Error())
	}
}
