// Package engine - Centralized default resolution
// Every omitted optional field degrades to exactly one documented
// default, recorded here as an assumption. Defaults are resolved in
// one place so the aggregation logic never carries ad hoc fallbacks.
package engine

import (
	"fmt"
	"strings"

	"landed-cost/core/types"
)

// Named estimation constants. These are deliberate, documented
// choices rather than inline literals.
const (
	// UncertaintyBand is the ±fraction applied around every point
	// estimate to produce a {low, high} range.
	UncertaintyBand = 0.15

	// DefaultAssumedRetailUSD backs the FOB benchmark when no target
	// retail price is supplied.
	DefaultAssumedRetailUSD = 25.0

	// DefaultAssumedQuantity amortizes certification costs when no
	// order quantity is supplied.
	DefaultAssumedQuantity = 500

	// SeaMethodQuantityThreshold is the order size at and above which
	// an unspecified shipping method defaults to sea LCL instead of air.
	SeaMethodQuantityThreshold = 500

	// DefaultPackagingPerUnitUSD and DefaultInsurancePerUnitUSD are
	// the standing per-unit extras when nothing better is known.
	DefaultPackagingPerUnitUSD = 0.95
	DefaultInsurancePerUnitUSD = 1.00

	// DefaultUnitCBM approximates one unit's volume for sea freight
	// when the size tier is unknown.
	DefaultUnitCBM = 0.01
)

// resolved is a ShipmentRequest after default resolution: no blank
// fields remain except material, HS code, and supplier, whose absence
// changes behavior rather than picking a substitute value.
type resolved struct {
	category    string
	material    string
	hsCode      string
	origin      string
	market      string
	sizeTier    string
	method      string
	supplier    string
	quantity    int // as requested; zero means unspecified
	amortizeQty int // quantity used to amortize per-order costs
	retailUSD   float64

	assumptions []string
}

func (r *resolved) assume(format string, args ...interface{}) {
	r.assumptions = append(r.assumptions, fmt.Sprintf(format, args...))
}

// resolveDefaults applies the engine's default policy to a validated
// request and records one assumption per omission.
func resolveDefaults(req *types.ShipmentRequest) *resolved {
	r := &resolved{
		category:    strings.TrimSpace(req.Category),
		material:    strings.TrimSpace(req.MaterialType),
		hsCode:      strings.TrimSpace(req.HSCode),
		origin:      strings.TrimSpace(req.OriginCountry),
		market:      strings.TrimSpace(req.TargetMarket),
		sizeTier:    strings.TrimSpace(req.SizeTier),
		method:      strings.TrimSpace(req.ShippingMethod),
		supplier:    strings.TrimSpace(req.SupplierIdentifier),
		quantity:    req.Quantity,
		retailUSD:   req.TargetRetailPrice,
		assumptions: []string{},
	}

	if r.origin == "" {
		r.origin = types.DefaultOrigin
		r.assume("Origin country not specified; assumed China.")
	}

	if r.category == "" {
		inferred := InferCategory(req.ProductName, r.material)
		r.category = inferred
		if inferred == generalCategory {
			r.assume("Product category not specified; using General benchmarks.")
		} else {
			r.assume("Product category not specified; inferred %q from the product description.", inferred)
		}
	}

	if r.material == "" {
		r.assume("Material type not specified; compliance screening limited to generic checks.")
	}

	if r.sizeTier == "" {
		r.assume("Size tier not declared; standard container loading and unscaled freight rates applied.")
	}

	if r.supplier == "" {
		r.assume("No supplier identified; denylist screening skipped.")
	}

	if r.method == "" {
		if r.quantity >= SeaMethodQuantityThreshold {
			r.method = types.MethodSeaLCL
			r.assume("Shipping method not specified; assumed sea LCL for %d units.", r.quantity)
		} else {
			r.method = types.MethodAir
			r.assume("Shipping method not specified; assumed air freight for a small volume.")
		}
	}

	r.amortizeQty = r.quantity
	if r.amortizeQty <= 0 {
		r.amortizeQty = DefaultAssumedQuantity
		r.assume("Order quantity not specified; per-order costs amortized over %d units.", DefaultAssumedQuantity)
	}

	if r.retailUSD <= 0 {
		r.retailUSD = DefaultAssumedRetailUSD
		r.assume("Target retail price not provided; assumed $%.2f for benchmark costing.", DefaultAssumedRetailUSD)
	}

	return r
}

const generalCategory = "General"

// categoryKeywords maps product-name keywords to benchmark categories.
type categoryKeyword struct {
	keyword  string
	category string
}

var categoryKeywords = []categoryKeyword{
	{"headphone", "Electronics"},
	{"earphone", "Electronics"},
	{"speaker", "Electronics"},
	{"charger", "Electronics"},
	{"cable", "Electronics"},
	{"electronic", "Electronics"},
	{"yoga", "Sports & Outdoors"},
	{"fitness", "Sports & Outdoors"},
	{"workout", "Sports & Outdoors"},
	{"exercise", "Sports & Outdoors"},
	{"kitchen", "Home & Kitchen"},
	{"cook", "Home & Kitchen"},
	{"utensil", "Home & Kitchen"},
	{"storage", "Home & Kitchen"},
	{"clothing", "Fashion"},
	{"apparel", "Fashion"},
	{"textile", "Fashion"},
	{"backpack", "Fashion"},
	{"bag", "Fashion"},
	{"beauty", "Health & Beauty"},
	{"skincare", "Health & Beauty"},
	{"cosmetic", "Health & Beauty"},
	{"supplement", "Health & Beauty"},
	{"toy", "Toys & Games"},
	{"game", "Toys & Games"},
}

// InferCategory guesses a benchmark category from the product name
// and material description. Material signals win over name keywords;
// no signal yields General.
func InferCategory(productName, materialType string) string {
	material := strings.ToLower(materialType)
	if strings.Contains(material, "electronics") || strings.Contains(material, "battery") {
		return "Electronics"
	}

	name := strings.ToLower(productName)
	for _, kw := range categoryKeywords {
		if strings.Contains(name, kw.keyword) {
			return kw.category
		}
	}
	return generalCategory
}
