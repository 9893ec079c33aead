// Package refdata holds the immutable reference tables the engine
// estimates from: tariffs, freight, compliance certification costs,
// marketplace referral fees, and cost-of-goods benchmarks.
//
// Tables are loaded once per process and never mutated afterwards, so
// concurrent requests share them without locking. Every lookup is a
// total function: unknown input resolves through an ordered fallback
// chain, never an error.
package refdata

import (
	"fmt"

	"landed-cost/core/types"
	"landed-cost/internal/errors"
)

// FreightEntry is one route+method rate.
type FreightEntry struct {
	// PerKG is the air freight rate per kilogram.
	PerKG float64 `json:"per_kg,omitempty" yaml:"per_kg,omitempty"`

	// PerCBM is the sea freight rate per cubic meter.
	PerCBM float64 `json:"per_cbm,omitempty" yaml:"per_cbm,omitempty"`

	// TransitDays is the door-to-port transit time.
	TransitDays int `json:"transit_days" yaml:"transit_days"`
}

// Rate returns whichever unit rate the entry carries.
func (e FreightEntry) Rate() float64 {
	if e.PerKG > 0 {
		return e.PerKG
	}
	return e.PerCBM
}

// SizeTier is the nominal physical profile of a packaging size tier,
// used to turn per-kg air rates into per-unit figures.
type SizeTier struct {
	WeightKG float64 `json:"weight_kg" yaml:"weight_kg"`
	CBM      float64 `json:"cbm,omitempty" yaml:"cbm,omitempty"`
}

// MaterialRequirement lists the certifications a material category
// needs and its compliance risk level.
type MaterialRequirement struct {
	Certifications []string        `json:"certifications" yaml:"certifications"`
	RiskLevel      types.RiskLevel `json:"risk_level" yaml:"risk_level"`
}

// CostRange is a certification's market cost spread.
type CostRange struct {
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Average float64 `json:"average" yaml:"average"`
}

// Certification is one certification's cost entry.
type Certification struct {
	CostRange CostRange `json:"cost_range" yaml:"cost_range"`
}

// ComplianceTable maps composite material keys (two names separated
// by " / ") to requirements, plus the certification cost sub-table.
type ComplianceTable struct {
	MaterialRequirements map[string]MaterialRequirement `json:"materialBasedRequirements" yaml:"materialBasedRequirements"`
	Certifications       map[string]Certification       `json:"certifications" yaml:"certifications"`
}

// Tables is the complete immutable reference data set.
type Tables struct {
	// Tariffs maps punctuation-free HS code -> origin key -> ad
	// valorem rate as a fraction. Every entry carries a "china" rate.
	Tariffs map[string]map[string]float64

	// Routes maps route key -> method -> rate entry.
	Routes map[string]map[string]FreightEntry

	// SizeTiers maps tier label ("XS".."XL") -> nominal profile.
	SizeTiers map[string]SizeTier

	// Compliance is the material certification table.
	Compliance ComplianceTable

	// MarketplaceFees maps product category -> referral fee fraction.
	// A "Default" entry is mandatory.
	MarketplaceFees map[string]float64

	// CogsBenchmarks maps product category -> factory price as a
	// fraction of retail. A "General" entry is mandatory.
	CogsBenchmarks map[string]float64

	// MarketTokens maps a lowercased target-market token to a route
	// suffix, combined with the origin into "<origin>_to_<suffix>".
	MarketTokens map[string]string
}

// tariffRateCeiling is a sanity bound: ad valorem duties essentially
// never reach 500%.
const tariffRateCeiling = 5.0

// Validate enforces the table invariants. Called once at load time;
// a violation is a configuration error and must prevent the engine
// from serving any request.
func (t *Tables) Validate() error {
	for code, origins := range t.Tariffs {
		if _, ok := origins[types.DefaultOrigin]; !ok {
			return errors.Newf(errors.TypeConfig, "tariff entry %s lacks a %s rate", code, types.DefaultOrigin)
		}
		for origin, rate := range origins {
			if rate < 0 || rate >= tariffRateCeiling {
				return errors.Newf(errors.TypeConfig, "tariff rate %s/%s out of range: %v", code, origin, rate)
			}
		}
	}

	if _, ok := t.Routes[DefaultRoute]; !ok {
		return errors.Newf(errors.TypeConfig, "freight table lacks the default route %s", DefaultRoute)
	}
	for route, methods := range t.Routes {
		for method, entry := range methods {
			if entry.TransitDays <= 0 {
				return errors.Newf(errors.TypeConfig, "freight %s/%s has non-positive transit days", route, method)
			}
			if entry.Rate() <= 0 {
				return errors.Newf(errors.TypeConfig, "freight %s/%s has non-positive rate", route, method)
			}
		}
	}

	if _, ok := t.MarketplaceFees[FeeDefaultKey]; !ok {
		return errors.Newf(errors.TypeConfig, "marketplace fee table lacks the %q entry", FeeDefaultKey)
	}
	if _, ok := t.CogsBenchmarks[CogsGeneralKey]; !ok {
		return errors.Newf(errors.TypeConfig, "cogs benchmark table lacks the %q entry", CogsGeneralKey)
	}
	for category, pct := range t.CogsBenchmarks {
		if pct <= 0 || pct >= 1 {
			return errors.Newf(errors.TypeConfig, "cogs benchmark %s out of (0,1): %v", category, pct)
		}
	}
	return nil
}

func (t *Tables) String() string {
	return fmt.Sprintf("refdata.Tables{tariffs=%d routes=%d materials=%d}",
		len(t.Tariffs), len(t.Routes), len(t.Compliance.MaterialRequirements))
}
