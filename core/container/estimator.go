// Package container estimates how densely a product loads into a
// standard 20ft container from its declared packaging size tier.
package container

import "strings"

// Efficiency classifies loading density.
type Efficiency string

const (
	EfficiencyLow    Efficiency = "Low"
	EfficiencyMedium Efficiency = "Medium"
	EfficiencyHigh   Efficiency = "High"
)

// Loading is the estimator result, serialized verbatim into the
// report's containerLoading section.
type Loading struct {
	ContainerLoading string     `json:"container_loading"`
	EfficiencyScore  Efficiency `json:"efficiency_score"`
	Advice           string     `json:"advice"`
}

var standardLoading = Loading{
	ContainerLoading: "~1,500 units per 20ft container (Standard)",
	EfficiencyScore:  EfficiencyMedium,
	Advice:           "Standard logistics profile. No particular risk, with room left for pallet optimization.",
}

// Estimate maps a declared size tier to a container loading figure,
// an efficiency classification, and packing advice. Matching is
// case-insensitive substring containment, checked in a fixed order;
// the first match wins. Blank or unrecognized input yields the
// standard profile.
func Estimate(sizeTier string) Loading {
	tier := strings.ToLower(strings.TrimSpace(sizeTier))
	if tier == "" {
		return standardLoading
	}

	switch {
	case strings.Contains(tier, "shoe box") || tier == "s":
		return Loading{
			ContainerLoading: "~3,500 units per 20ft container (Optimized)",
			EfficiencyScore:  EfficiencyMedium,
			Advice:           "Packaging size fits standard FBA/LTL handling. Maximize pallet loading efficiency.",
		}
	case strings.Contains(tier, "large appliance") || tier == "xl":
		return Loading{
			ContainerLoading: "~200 units per 20ft container (Bulky)",
			EfficiencyScore:  EfficiencyLow,
			Advice:           "Very bulky cargo drives sea freight cost up. Reduce CBM or consider knock-down packaging.",
		}
	case strings.Contains(tier, "small envelope") || tier == "xs":
		return Loading{
			ContainerLoading: "~15,000 units per 20ft container (High Density)",
			EfficiencyScore:  EfficiencyHigh,
			Advice:           "Very small units load at high density. Reinforce packaging against breakage in transit.",
		}
	default:
		return standardLoading
	}
}
