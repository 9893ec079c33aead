// Package engine - Cost & Risk Aggregator
// Pulls reference tables, denylist screening, and container loading
// together into a landed-cost breakdown and a risk classification.
// Lookups never fail; only structurally invalid input returns an
// error. Identical input yields identical output.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"landed-cost/core/container"
	"landed-cost/core/denylist"
	"landed-cost/core/refdata"
	"landed-cost/core/types"
	"landed-cost/internal/logging"
)

// Duty-rate bands used for commercial risk classification.
const (
	DutyRiskMediumThreshold = 0.06
	DutyRiskHighThreshold   = 0.16
)

// Engine is the aggregator. Construct once with loaded tables and a
// denylist matcher; safe for concurrent use, no internal mutable state.
type Engine struct {
	tables    *refdata.Tables
	suppliers denylist.Matcher
	log       *zap.Logger
}

// New creates an Engine over the given reference tables and matcher.
func New(tables *refdata.Tables, suppliers denylist.Matcher) *Engine {
	return &Engine{
		tables:    tables,
		suppliers: suppliers,
		log:       logging.With(zap.String("component", "engine")),
	}
}

// Result is the complete per-request estimation output.
type Result struct {
	Estimate  *types.CostEstimate
	Risk      *types.RiskAssessment
	Container container.Loading
}

// Estimate produces a cost estimate and risk assessment for one
// shipment request. Returns a validation error for structurally
// invalid input; every other omission degrades to a documented
// default recorded in the assumption list.
func (e *Engine) Estimate(req *types.ShipmentRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r := resolveDefaults(req)

	risk := &types.RiskAssessment{
		OverallRisk:     types.RiskLow,
		ComplianceRisks: []string{},
		LogisticsRisks:  []string{},
		CommercialRisks: []string{},
		Checklist:       []string{"Order a pre-production sample and book a third-party inspection."},
	}

	// FOB from the retail price and the category factory benchmark.
	cogs := e.tables.CogsBenchmark(r.category)
	if cogs.Strategy != refdata.StrategyExact && req.Category != "" {
		r.assume("Category %q not in the benchmark table; using General cost benchmarks.", req.Category)
	}
	retail := decimal.NewFromFloat(r.retailUSD)
	fobPoint := retail.Mul(decimal.NewFromFloat(cogs.Value))

	// Duty.
	var dutyRate float64
	if r.hsCode == "" {
		r.assume("No HS code provided; duty rate assumed 0%% pending customs classification.")
	} else {
		tariff := e.tables.TariffRate(r.hsCode, r.origin)
		dutyRate = tariff.Rate
		switch tariff.Strategy {
		case refdata.StrategyOriginFallback:
			r.assume("No tariff rate for origin %q under HS %s; using the China rate.", r.origin, r.hsCode)
		case refdata.StrategyZeroDefault:
			r.assume("HS code %s not in the tariff table; duty rate assumed 0%%.", r.hsCode)
		}
	}
	dutyPoint := fobPoint.Mul(decimal.NewFromFloat(dutyRate))

	// Freight.
	route := e.tables.RouteForMarket(r.origin, r.market)
	if route.Strategy == refdata.StrategyDefaultRoute {
		r.assume("No freight route from %s to %q; using the default China to US West Coast route.", r.origin, r.market)
	}
	freight := e.tables.FreightRate(route.Route, r.method, r.sizeTier)
	freightPoint := e.freightPerUnit(r, freight)

	// Compliance.
	comp := e.tables.ComplianceCosts(r.material)
	compliancePerUnit := decimal.NewFromFloat(comp.TotalCost).
		Div(decimal.NewFromInt(int64(r.amortizeQty)))
	if len(comp.Certifications) > 0 {
		certList := strings.Join(comp.Certifications, ", ")
		prefix := "Material"
		if comp.RiskLevel == types.RiskHigh {
			prefix = "High compliance risk: material"
		}
		risk.ComplianceRisks = append(risk.ComplianceRisks,
			fmt.Sprintf("%s %q requires certifications: %s.", prefix, comp.MatchedKey, certList))
		risk.Checklist = append(risk.Checklist,
			fmt.Sprintf("Verify certifications before ordering: %s.", certList))
		risk.OverallRisk = types.MaxRisk(risk.OverallRisk, comp.RiskLevel)
		r.assume("Certification costs ($%.0f total for %s) amortized over %d units.",
			comp.TotalCost, certList, r.amortizeQty)
	}

	// Marketplace fee and fixed extras.
	fee := e.tables.MarketplaceFee(r.category)
	if fee.Strategy != refdata.StrategyExact && req.Category != "" {
		r.assume("Category %q not in the marketplace fee table; using the Default referral fee.", req.Category)
	}
	feePerUnit := retail.Mul(decimal.NewFromFloat(fee.Value))
	fixedExtras := decimal.NewFromFloat(DefaultPackagingPerUnitUSD).
		Add(decimal.NewFromFloat(DefaultInsurancePerUnitUSD))
	extrasPoint := feePerUnit.Add(fixedExtras).Add(compliancePerUnit)

	// Container loading.
	loading := container.Estimate(r.sizeTier)
	if loading.EfficiencyScore == container.EfficiencyLow {
		risk.LogisticsRisks = append(risk.LogisticsRisks,
			"Low container loading efficiency (~200 units per 20ft container); per-unit freight cost is high.")
		risk.OverallRisk = types.MaxRisk(risk.OverallRisk, types.RiskMedium)
	}

	// Duty band feeds commercial risk.
	switch band := dutyRiskBand(dutyRate); band {
	case types.RiskHigh, types.RiskMedium:
		risk.CommercialRisks = append(risk.CommercialRisks,
			fmt.Sprintf("Import duty of %.1f%% materially affects margin.", dutyRate*100))
		risk.OverallRisk = types.MaxRisk(risk.OverallRisk, band)
	}

	// Denylist screening. A hit forces overall risk to High and is
	// never dropped from the output.
	if r.supplier != "" {
		if hit := e.screenSupplier(r.supplier); hit != nil {
			risk.OverallRisk = types.RiskHigh
			risk.CommercialRisks = append(risk.CommercialRisks,
				fmt.Sprintf("Supplier %q is denylisted (risk score %d): %s", hit.CompanyName, hit.RiskScore, hit.Note))
			risk.Checklist = append(risk.Checklist,
				fmt.Sprintf("Do not pay deposits to %s until independently re-verified.", hit.CompanyName))
			e.log.Warn("denylist hit",
				zap.String("supplier_id", hit.SupplierID),
				zap.Int("risk_score", hit.RiskScore))
		}
	}

	est := &types.CostEstimate{
		FOBPerUnit:     types.RangeAround(fobPoint, UncertaintyBand),
		FreightPerUnit: types.RangeAround(freightPoint, UncertaintyBand),
		DutyPerUnit:    types.RangeAround(dutyPoint, UncertaintyBand),
		ExtrasPerUnit:  types.RangeAround(extrasPoint, UncertaintyBand),
		TransitDays:    freight.TransitDays,
		Assumptions:    r.assumptions,
	}
	est.DDPPerUnit = est.FOBPerUnit.
		Add(est.FreightPerUnit).
		Add(est.DutyPerUnit).
		Add(est.ExtrasPerUnit)
	if r.quantity > 0 {
		shipment := est.DDPPerUnit.Scale(decimal.NewFromInt(int64(r.quantity)))
		est.DDPPerShipment = &shipment
	}
	est.CostDrivers = costDrivers(r, est, dutyRate, fee.Value, comp)

	e.log.Debug("estimate complete",
		zap.String("category", r.category),
		zap.String("route", route.Route),
		zap.Int("assumptions", len(r.assumptions)),
		zap.String("overall_risk", string(risk.OverallRisk)))

	return &Result{Estimate: est, Risk: risk, Container: loading}, nil
}

// freightPerUnit turns the resolved freight rate into a per-unit
// figure. Air rates scaled by a recognized tier are already per unit;
// otherwise the approximation is recorded as an assumption.
func (e *Engine) freightPerUnit(r *resolved, freight refdata.FreightLookup) decimal.Decimal {
	rate := decimal.NewFromFloat(freight.Rate)

	switch {
	case freight.Strategy == refdata.StrategyMethodDefault:
		r.assume("No %s rate on the resolved route; using the conservative default ($%.2f, %d days).",
			r.method, refdata.DefaultFreightRate, refdata.DefaultTransitDays)
		return rate
	case freight.TierApplied:
		return rate
	case r.method == types.MethodAir:
		if r.sizeTier != "" {
			r.assume("Size tier %q not recognized; air freight estimated at one kilogram per unit.", r.sizeTier)
		} else {
			r.assume("Air freight estimated at one kilogram per unit.")
		}
		return rate
	default:
		// Sea rates are per CBM; scale by the tier's nominal volume.
		if tier, ok := e.tables.SizeTiers[refdata.NormalizeTier(r.sizeTier)]; ok && tier.CBM > 0 {
			return rate.Mul(decimal.NewFromFloat(tier.CBM))
		}
		r.assume("Sea freight estimated at %.2f CBM per unit.", DefaultUnitCBM)
		return rate.Mul(decimal.NewFromFloat(DefaultUnitCBM))
	}
}

// screenSupplier routes URL-looking identifiers through URL
// extraction and everything else through the plain check.
func (e *Engine) screenSupplier(identifier string) *denylist.Entry {
	if strings.Contains(identifier, "://") || strings.HasPrefix(identifier, "www.") {
		return e.suppliers.CheckURL(identifier)
	}
	return e.suppliers.Check(identifier)
}

func dutyRiskBand(rate float64) types.RiskLevel {
	switch {
	case rate >= DutyRiskHighThreshold:
		return types.RiskHigh
	case rate >= DutyRiskMediumThreshold:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// costDrivers names the largest cost contributors, largest first,
// capped at five. Ordering is deterministic: by point value
// descending, label as tiebreak.
func costDrivers(r *resolved, est *types.CostEstimate, dutyRate, feeRate float64, comp refdata.ComplianceLookup) []string {
	type driver struct {
		label string
		value decimal.Decimal
	}

	drivers := []driver{
		{fmt.Sprintf("Factory cost (FOB %s per unit)", est.FOBPerUnit), est.FOBPerUnit.Mid()},
		{fmt.Sprintf("Freight via %s (%s per unit, ~%d days transit)", r.method, est.FreightPerUnit, est.TransitDays), est.FreightPerUnit.Mid()},
	}
	if dutyRate > 0 {
		drivers = append(drivers, driver{
			fmt.Sprintf("Import duty at %.1f%% (%s per unit)", dutyRate*100, est.DutyPerUnit),
			est.DutyPerUnit.Mid(),
		})
	}
	drivers = append(drivers, driver{
		fmt.Sprintf("Marketplace referral fee at %.0f%% plus packaging and insurance", feeRate*100),
		est.ExtrasPerUnit.Mid(),
	})
	if len(comp.Certifications) > 0 {
		drivers = append(drivers, driver{
			fmt.Sprintf("Compliance certifications: %s ($%.0f per order)", strings.Join(comp.Certifications, ", "), comp.TotalCost),
			decimal.NewFromFloat(comp.TotalCost).Div(decimal.NewFromInt(int64(r.amortizeQty))),
		})
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		if c := drivers[i].value.Cmp(drivers[j].value); c != 0 {
			return c > 0
		}
		return drivers[i].label < drivers[j].label
	})

	const maxDrivers = 5
	if len(drivers) > maxDrivers {
		drivers = drivers[:maxDrivers]
	}
	labels := make([]string, len(drivers))
	for i, d := range drivers {
		labels[i] = d.label
	}
	return labels
}
