// Package types - Shipment analysis request
package types

import (
	"landed-cost/internal/errors"
)

// Shipping methods accepted by the freight table.
const (
	MethodAir    = "air"
	MethodSeaLCL = "sea_lcl"
	MethodSeaFCL = "sea_fcl"
)

// DefaultOrigin is assumed when the request omits the origin country.
const DefaultOrigin = "china"

// ShipmentRequest carries everything the intake flow knows about a
// product and its shipment plan. Every field except TargetMarket is
// optional: omissions degrade to documented defaults, each recorded
// as an assumption in the resulting estimate.
type ShipmentRequest struct {
	// ProductName is the user's free-text label, used for category
	// inference when Category is blank.
	ProductName string `json:"productName,omitempty"`

	// Category is the product category, e.g. "Electronics".
	Category string `json:"category,omitempty"`

	// MaterialType is a free-text material description,
	// e.g. "Plastic / Silicone".
	MaterialType string `json:"materialType,omitempty"`

	// HSCode is the customs classification, punctuation tolerated.
	HSCode string `json:"hsCode,omitempty"`

	// OriginCountry defaults to "china".
	OriginCountry string `json:"originCountry,omitempty"`

	// TargetMarket is required, e.g. "US Amazon FBA".
	TargetMarket string `json:"targetMarket"`

	// SizeTier is the declared packaging size tier,
	// e.g. "S: Shoe Box size".
	SizeTier string `json:"sizeTier,omitempty"`

	// ShippingMethod is air, sea_lcl, or sea_fcl. Blank means the
	// engine picks by quantity.
	ShippingMethod string `json:"shippingMethod,omitempty"`

	// SupplierIdentifier is a supplier name, ID, or marketplace URL
	// to screen against the denylist.
	SupplierIdentifier string `json:"supplier,omitempty"`

	// Quantity is the planned order quantity in units.
	Quantity int `json:"quantity,omitempty"`

	// TargetRetailPrice is the intended retail price in USD.
	TargetRetailPrice float64 `json:"targetRetailPrice,omitempty"`
}

// Validate rejects structurally invalid input. Missing optional
// fields are not errors; they degrade to defaults downstream.
func (r *ShipmentRequest) Validate() error {
	if r == nil {
		return errors.New(errors.TypeValidation, "request is empty")
	}
	if r.TargetMarket == "" {
		return errors.Validation("targetMarket", "is required")
	}
	if r.Quantity < 0 {
		return errors.Validation("quantity", "must not be negative")
	}
	if r.TargetRetailPrice < 0 {
		return errors.Validation("targetRetailPrice", "must not be negative")
	}
	return nil
}
