// Package container_test
package container_test

import (
	"strings"
	"testing"

	"landed-cost/core/container"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name       string
		sizeTier   string
		loading    string // substring of the loading figure
		efficiency container.Efficiency
	}{
		{"blank tier is standard", "", "~1,500", container.EfficiencyMedium},
		{"unrecognized tier is standard", "mystery crate", "~1,500", container.EfficiencyMedium},
		{"shoe box", "S: Shoe Box size", "~3,500", container.EfficiencyMedium},
		{"bare s label", "s", "~3,500", container.EfficiencyMedium},
		{"large appliance", "XL: Large Appliance size", "~200", container.EfficiencyLow},
		{"bare xl label", "XL", "~200", container.EfficiencyLow},
		{"small envelope", "XS: Small Envelope size", "~15,000", container.EfficiencyHigh},
		{"bare xs label", "xs", "~15,000", container.EfficiencyHigh},
		{"case insensitive", "SHOE BOX", "~3,500", container.EfficiencyMedium},
		{"surrounding whitespace", "  xl  ", "~200", container.EfficiencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := container.Estimate(tt.sizeTier)
			if !strings.Contains(got.ContainerLoading, tt.loading) {
				t.Errorf("Estimate(%q).ContainerLoading = %q, want it to contain %q",
					tt.sizeTier, got.ContainerLoading, tt.loading)
			}
			if got.EfficiencyScore != tt.efficiency {
				t.Errorf("Estimate(%q).EfficiencyScore = %q, want %q",
					tt.sizeTier, got.EfficiencyScore, tt.efficiency)
			}
			if got.Advice == "" {
				t.Errorf("Estimate(%q) returned empty advice", tt.sizeTier)
			}
		})
	}
}

func TestEstimateDeterministic(t *testing.T) {
	first := container.Estimate("S: Shoe Box size")
	for i := 0; i < 10; i++ {
		if container.Estimate("S: Shoe Box size") != first {
			t.Fatal("Estimate is not deterministic")
		}
	}
}
