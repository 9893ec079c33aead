// Package report assembles engine output into the fixed document
// schema consumed by the dashboard and the narrative generator.
// Assembly is a pure mapping; no cost logic lives here.
package report

import (
	"time"

	"landed-cost/core/container"
	"landed-cost/core/engine"
	"landed-cost/core/types"
)

// Confidence thresholds on the assumption count.
const (
	assumptionsForMedium = 2
	assumptionsForLow    = 5
)

// Currency is the only currency the engine reports in.
const Currency = "USD"

// Meta is the report header.
type Meta struct {
	GeneratedAt     string                `json:"generatedAt"`
	Currency        string                `json:"currency"`
	TargetMarket    string                `json:"targetMarket"`
	ConfidenceLevel types.ConfidenceLevel `json:"confidenceLevel"`
}

// CostOverview is the headline cost section.
type CostOverview struct {
	DDPPerUnitRange     types.Range  `json:"ddpPerUnitRange"`
	DDPPerShipmentRange *types.Range `json:"ddpPerShipmentRange,omitempty"`
	MainCostDrivers     []string     `json:"mainCostDrivers"`
	KeyAssumptions      []string     `json:"keyAssumptions"`
}

// CostBreakdown carries the per-component bands; zero components are
// omitted.
type CostBreakdown struct {
	FOBPerUnitRange     *types.Range `json:"fobPerUnitRange,omitempty"`
	FreightPerUnitRange *types.Range `json:"freightPerUnitRange,omitempty"`
	DutyPerUnitRange    *types.Range `json:"dutyPerUnitRange,omitempty"`
	ExtraPerUnitRange   *types.Range `json:"extraPerUnitRange,omitempty"`
}

// RiskAnalysis is the risk section; levels are lowercase on the wire.
type RiskAnalysis struct {
	OverallRiskLevel     string   `json:"overallRiskLevel"`
	ComplianceRisks      []string `json:"complianceRisks"`
	LogisticsRisks       []string `json:"logisticsRisks"`
	CommercialRisks      []string `json:"commercialRisks"`
	MustCheckBeforeOrder []string `json:"mustCheckBeforeOrder"`
}

// ReportDocument is the complete output contract.
type ReportDocument struct {
	Meta             Meta              `json:"meta"`
	CostOverview     CostOverview      `json:"costOverview"`
	CostBreakdown    CostBreakdown     `json:"costBreakdown"`
	RiskAnalysis     RiskAnalysis      `json:"riskAnalysis"`
	ContainerLoading container.Loading `json:"containerLoading"`
}

// RequestMeta is the request context stamped into the report header.
type RequestMeta struct {
	TargetMarket string
}

// Assembler maps engine results onto the document schema. Clock is a
// field so tests can pin the generation timestamp.
type Assembler struct {
	Clock func() time.Time
}

// NewAssembler creates an Assembler on the real clock.
func NewAssembler() *Assembler {
	return &Assembler{Clock: time.Now}
}

// Assemble builds the report document. Confidence derives from the
// assumption count: 0-1 high, 2-4 medium, 5+ low.
func (a *Assembler) Assemble(res *engine.Result, meta RequestMeta) *ReportDocument {
	est := res.Estimate

	doc := &ReportDocument{
		Meta: Meta{
			GeneratedAt:     a.Clock().UTC().Format(time.RFC3339),
			Currency:        Currency,
			TargetMarket:    meta.TargetMarket,
			ConfidenceLevel: ConfidenceFor(len(est.Assumptions)),
		},
		CostOverview: CostOverview{
			DDPPerUnitRange:     est.DDPPerUnit,
			DDPPerShipmentRange: est.DDPPerShipment,
			MainCostDrivers:     emptyIfNil(est.CostDrivers),
			KeyAssumptions:      emptyIfNil(est.Assumptions),
		},
		CostBreakdown: CostBreakdown{
			FOBPerUnitRange:     optional(est.FOBPerUnit),
			FreightPerUnitRange: optional(est.FreightPerUnit),
			DutyPerUnitRange:    optional(est.DutyPerUnit),
			ExtraPerUnitRange:   optional(est.ExtrasPerUnit),
		},
		RiskAnalysis: RiskAnalysis{
			OverallRiskLevel:     res.Risk.OverallRisk.Lower(),
			ComplianceRisks:      emptyIfNil(res.Risk.ComplianceRisks),
			LogisticsRisks:       emptyIfNil(res.Risk.LogisticsRisks),
			CommercialRisks:      emptyIfNil(res.Risk.CommercialRisks),
			MustCheckBeforeOrder: emptyIfNil(res.Risk.Checklist),
		},
		ContainerLoading: res.Container,
	}
	return doc
}

// ConfidenceFor maps an assumption count onto a confidence level.
func ConfidenceFor(assumptions int) types.ConfidenceLevel {
	switch {
	case assumptions >= assumptionsForLow:
		return types.ConfidenceLow
	case assumptions >= assumptionsForMedium:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceHigh
	}
}

func optional(r types.Range) *types.Range {
	if r.IsZero() {
		return nil
	}
	return &r
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
