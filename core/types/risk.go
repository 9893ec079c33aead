// Package types defines the shared value types of the estimation engine.
package types

import "strings"

// RiskLevel is an ordered severity classification.
// High dominates Medium dominates Low.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Rank returns the ordinal severity, higher is worse.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 0
	}
}

// Lower returns the lowercase wire form ("low", "medium", "high")
// used by the report schema.
func (r RiskLevel) Lower() string {
	return strings.ToLower(string(r))
}

// MaxRisk returns the more severe of the two levels.
func MaxRisk(a, b RiskLevel) RiskLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// ConfidenceLevel classifies how much of the estimate rests on
// assumptions rather than supplied data.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)
