// Package refdata - Total lookup functions
// Each lookup walks an explicit ordered strategy list; the name of
// the strategy that resolved the value is part of the result, so the
// aggregator can record fallbacks as assumptions.
package refdata

import (
	"sort"
	"strings"

	"landed-cost/core/types"
)

// Strategy names reported by the lookups.
const (
	StrategyExact          = "exact_match"
	StrategyOriginFallback = "origin_fallback"
	StrategyZeroDefault    = "zero_default"

	StrategyDefaultRoute  = "default_route"
	StrategyMethodDefault = "method_default"
	StrategyMarketMatch   = "market_match"

	StrategyMaterialMatch   = "material_match"
	StrategyGeneralFallback = "general_fallback"
	StrategyDefaultFallback = "default_fallback"
)

// Conservative freight default used when the method is unknown even
// under the resolved route.
const (
	DefaultRoute         = "china_to_us_west_coast"
	DefaultFreightRate   = 5.5
	DefaultTransitDays   = 5
	FeeDefaultKey        = "Default"
	CogsGeneralKey       = "General"
	materialKeyDelimiter = " / "
)

// TariffLookup is the result of a tariff rate resolution.
type TariffLookup struct {
	// Rate is the ad valorem duty as a fraction.
	Rate float64

	// Strategy names the resolution step that produced the rate.
	Strategy string
}

type tariffStrategy struct {
	name    string
	resolve func(t *Tables, code, origin string) (float64, bool)
}

// tariffStrategies is the resolution order for tariff rates:
// exact code+origin, then the code's china rate, then zero.
var tariffStrategies = []tariffStrategy{
	{StrategyExact, func(t *Tables, code, origin string) (float64, bool) {
		entry, ok := t.Tariffs[code]
		if !ok {
			return 0, false
		}
		rate, ok := entry[origin]
		return rate, ok
	}},
	{StrategyOriginFallback, func(t *Tables, code, _ string) (float64, bool) {
		entry, ok := t.Tariffs[code]
		if !ok {
			return 0, false
		}
		rate, ok := entry[types.DefaultOrigin]
		return rate, ok
	}},
	{StrategyZeroDefault, func(*Tables, string, string) (float64, bool) {
		return 0, true
	}},
}

// TariffRate resolves the duty rate for an HS code and origin.
// Punctuation in the code is ignored. Never fails: an unknown code
// resolves to zero.
func (t *Tables) TariffRate(hsCode, origin string) TariffLookup {
	code := stripPunctuation(hsCode)
	originKey := normalizeKey(origin)
	if originKey == "" {
		originKey = types.DefaultOrigin
	}

	for _, s := range tariffStrategies {
		if rate, ok := s.resolve(t, code, originKey); ok {
			return TariffLookup{Rate: rate, Strategy: s.name}
		}
	}
	return TariffLookup{Strategy: StrategyZeroDefault}
}

// FreightLookup is the result of a freight rate resolution.
type FreightLookup struct {
	// Rate is per-kg for air (per-unit when a size tier applied) and
	// per-cbm for sea methods.
	Rate        float64
	TransitDays int

	// Strategy is exact_match, default_route, or method_default.
	Strategy string

	// TierApplied reports whether an air rate was scaled by the size
	// tier's nominal weight.
	TierApplied bool
}

// FreightRate resolves the freight rate and transit time for a route
// and method. Unknown routes fall back to the default route; an
// unknown method under the resolved route yields a conservative
// hardcoded default. For air with a recognized size tier, the per-kg
// rate is scaled to a per-unit figure by the tier's nominal weight;
// unrecognized tiers are ignored.
func (t *Tables) FreightRate(route, method, sizeTier string) FreightLookup {
	strategy := StrategyExact
	methods, ok := t.Routes[route]
	if !ok {
		methods = t.Routes[DefaultRoute]
		strategy = StrategyDefaultRoute
	}

	entry, ok := methods[method]
	if !ok {
		return FreightLookup{
			Rate:        DefaultFreightRate,
			TransitDays: DefaultTransitDays,
			Strategy:    StrategyMethodDefault,
		}
	}

	result := FreightLookup{
		Rate:        entry.Rate(),
		TransitDays: entry.TransitDays,
		Strategy:    strategy,
	}

	if method == types.MethodAir && sizeTier != "" {
		if tier, ok := t.SizeTiers[NormalizeTier(sizeTier)]; ok {
			result.Rate = entry.PerKG * tier.WeightKG
			result.TierApplied = true
		}
	}
	return result
}

// ComplianceLookup is the result of a compliance cost resolution.
type ComplianceLookup struct {
	Certifications []string
	TotalCost      float64
	RiskLevel      types.RiskLevel

	// MatchedKey is the material table key that matched, empty when
	// the zero default applied.
	MatchedKey string
	Strategy   string
}

// ComplianceCosts resolves required certifications and their summed
// average cost for a material description. Material keys are
// composite ("A / B"); the first key, in sorted key order, where
// either half substring-matches the material (in either direction)
// wins. No material or no match yields the zero/Low default.
func (t *Tables) ComplianceCosts(materialType string) ComplianceLookup {
	zero := ComplianceLookup{
		Certifications: []string{},
		RiskLevel:      types.RiskLow,
		Strategy:       StrategyZeroDefault,
	}
	material := strings.ToLower(strings.TrimSpace(materialType))
	if material == "" {
		return zero
	}

	keys := make([]string, 0, len(t.Compliance.MaterialRequirements))
	for k := range t.Compliance.MaterialRequirements {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !materialMatches(material, key) {
			continue
		}
		req := t.Compliance.MaterialRequirements[key]
		result := ComplianceLookup{
			Certifications: []string{},
			RiskLevel:      req.RiskLevel,
			MatchedKey:     key,
			Strategy:       StrategyMaterialMatch,
		}
		for _, certName := range req.Certifications {
			cert, ok := t.Compliance.Certifications[certName]
			if !ok {
				continue
			}
			result.Certifications = append(result.Certifications, certName)
			result.TotalCost += cert.CostRange.Average
		}
		return result
	}
	return zero
}

// materialMatches tests a lowercased material description against a
// composite table key. Substring matching is intentionally lenient:
// a false positive only triggers extra human review.
func materialMatches(material, key string) bool {
	for _, half := range strings.Split(key, materialKeyDelimiter) {
		half = strings.ToLower(strings.TrimSpace(half))
		if half == "" {
			continue
		}
		if strings.Contains(material, half) || strings.Contains(half, material) {
			return true
		}
	}
	return false
}

// BenchmarkLookup is a category-keyed fraction with its resolution
// strategy.
type BenchmarkLookup struct {
	Value    float64
	Strategy string
}

// CogsBenchmark resolves the factory-margin fraction for a category,
// falling back to the General entry.
func (t *Tables) CogsBenchmark(category string) BenchmarkLookup {
	if pct, ok := t.CogsBenchmarks[category]; ok {
		return BenchmarkLookup{Value: pct, Strategy: StrategyExact}
	}
	return BenchmarkLookup{Value: t.CogsBenchmarks[CogsGeneralKey], Strategy: StrategyGeneralFallback}
}

// MarketplaceFee resolves the referral fee fraction for a category,
// falling back to the Default entry.
func (t *Tables) MarketplaceFee(category string) BenchmarkLookup {
	if fee, ok := t.MarketplaceFees[category]; ok {
		return BenchmarkLookup{Value: fee, Strategy: StrategyExact}
	}
	return BenchmarkLookup{Value: t.MarketplaceFees[FeeDefaultKey], Strategy: StrategyDefaultFallback}
}

// RouteLookup is the result of mapping origin + target market onto a
// freight route key.
type RouteLookup struct {
	Route    string
	Strategy string
}

// RouteForMarket maps a free-text target market and an origin country
// onto a freight route key. Market text is tokenized and each token
// checked against the market alias table; combined routes that do not
// exist in the freight table fall through to the default route.
func (t *Tables) RouteForMarket(origin, market string) RouteLookup {
	originKey := normalizeKey(origin)
	if originKey == "" {
		originKey = types.DefaultOrigin
	}

	for _, token := range tokenize(market) {
		suffix, ok := t.MarketTokens[token]
		if !ok {
			continue
		}
		route := originKey + "_to_" + suffix
		if _, ok := t.Routes[route]; ok {
			return RouteLookup{Route: route, Strategy: StrategyMarketMatch}
		}
	}
	return RouteLookup{Route: DefaultRoute, Strategy: StrategyDefaultRoute}
}

// NormalizeTier reduces a declared size tier like "S: Shoe Box size"
// to its table label ("S").
func NormalizeTier(tier string) string {
	label, _, _ := strings.Cut(tier, ":")
	return strings.ToUpper(strings.TrimSpace(label))
}

// stripPunctuation removes everything but letters and digits.
func stripPunctuation(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeKey lowercases and underscores a free-text key the way the
// tables are keyed ("South Korea" -> "south_korea").
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "_")
}

// tokenize splits free text into lowercase letter runs.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	})
}
