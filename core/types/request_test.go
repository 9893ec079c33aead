// Package types_test - Request validation tests
package types_test

import (
	"testing"

	"landed-cost/core/types"
	"landed-cost/internal/errors"
)

func TestValidateRequiresTargetMarket(t *testing.T) {
	req := &types.ShipmentRequest{}
	err := req.Validate()
	if err == nil {
		t.Fatal("empty request validated")
	}
	if !errors.IsValidation(err) {
		t.Fatalf("error = %v, want a validation error", err)
	}
	if field := err.(*errors.Error).Field(); field != "targetMarket" {
		t.Errorf("Field() = %q, want targetMarket", field)
	}
}

func TestValidateRejectsNegativeNumbers(t *testing.T) {
	tests := []struct {
		name  string
		req   types.ShipmentRequest
		field string
	}{
		{"negative quantity", types.ShipmentRequest{TargetMarket: "US", Quantity: -1}, "quantity"},
		{"negative retail price", types.ShipmentRequest{TargetMarket: "US", TargetRetailPrice: -0.01}, "targetRetailPrice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if err == nil {
				t.Fatal("invalid request validated")
			}
			if field := err.(*errors.Error).Field(); field != tt.field {
				t.Errorf("Field() = %q, want %q", field, tt.field)
			}
		})
	}
}

func TestValidateAcceptsMinimalRequest(t *testing.T) {
	req := &types.ShipmentRequest{TargetMarket: "US Amazon FBA"}
	if err := req.Validate(); err != nil {
		t.Fatalf("minimal request rejected: %v", err)
	}
}
