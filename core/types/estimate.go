// Package types - Estimation results
package types

// CostEstimate is the structured landed-cost breakdown for one
// request. Immutable after assembly; all ranges satisfy low <= high
// and all values are non-negative.
type CostEstimate struct {
	// FOBPerUnit is the factory-gate unit price band.
	FOBPerUnit Range

	// FreightPerUnit is the shipping cost band per unit.
	FreightPerUnit Range

	// DutyPerUnit is the import duty band per unit.
	DutyPerUnit Range

	// ExtrasPerUnit covers packaging, insurance, marketplace fees,
	// and amortized certification costs.
	ExtrasPerUnit Range

	// DDPPerUnit is the delivered-duty-paid landed cost band per unit.
	DDPPerUnit Range

	// DDPPerShipment is the whole-shipment band, present only when a
	// quantity was supplied.
	DDPPerShipment *Range

	// TransitDays is the estimated door-to-port transit time.
	TransitDays int

	// CostDrivers names the largest cost contributors, at most five,
	// largest first.
	CostDrivers []string

	// Assumptions records, verbatim, every fallback the estimation
	// triggered. More assumptions means lower report confidence.
	Assumptions []string
}

// RiskAssessment is the deterministic risk classification for one
// request. A denylist hit forces OverallRisk to High.
type RiskAssessment struct {
	OverallRisk     RiskLevel
	ComplianceRisks []string
	LogisticsRisks  []string
	CommercialRisks []string

	// Checklist lists what must be verified before placing an order.
	Checklist []string
}
