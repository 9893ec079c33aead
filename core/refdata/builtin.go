// Package refdata - Built-in 2025 reference tables
// Seed data shipped with the binary; any table can be replaced by a
// configured data file.
package refdata

import "landed-cost/core/types"

// Builtin returns a fresh copy of the built-in reference tables.
func Builtin() *Tables {
	return &Tables{
		Tariffs: map[string]map[string]float64{
			// Toys (9503.00)
			"950300": {"china": 0.0, "vietnam": 0.0, "india": 0.0},
			// Plastic articles (3926.90) - china includes Section 301
			"392690": {"china": 0.305, "vietnam": 0.053, "india": 0.053},
			// Headphones / earphones (8518.30)
			"851830": {"china": 0.147, "vietnam": 0.0},
			// Power adapters / chargers (8504.40)
			"850440": {"china": 0.25, "vietnam": 0.0},
			// Lithium cells and batteries (8507.60)
			"850760": {"china": 0.284, "korea": 0.034},
			// Footwear (6402.99)
			"640299": {"china": 0.20, "vietnam": 0.09, "india": 0.09},
			// Made-up textile articles (6307.90)
			"630790": {"china": 0.32, "vietnam": 0.07, "india": 0.07},
			// Backpacks and bags (4202.92)
			"420292": {"china": 0.425, "vietnam": 0.175, "india": 0.175},
			// Kitchen articles of stainless steel (7323.93)
			"732393": {"china": 0.27, "vietnam": 0.02, "india": 0.02},
			// Silicone in primary forms (3910.00)
			"391000": {"china": 0.28, "korea": 0.03},
		},

		Routes: map[string]map[string]FreightEntry{
			"china_to_us_west_coast": {
				"air":     {PerKG: 5.5, TransitDays: 7},
				"sea_lcl": {PerCBM: 180, TransitDays: 28},
				"sea_fcl": {PerCBM: 95, TransitDays: 32},
			},
			"china_to_us_east_coast": {
				"air":     {PerKG: 6.2, TransitDays: 8},
				"sea_lcl": {PerCBM: 210, TransitDays: 38},
				"sea_fcl": {PerCBM: 120, TransitDays: 42},
			},
			"china_to_eu": {
				"air":     {PerKG: 5.8, TransitDays: 7},
				"sea_lcl": {PerCBM: 165, TransitDays: 35},
				"sea_fcl": {PerCBM: 90, TransitDays: 40},
			},
			"china_to_japan": {
				"air":     {PerKG: 3.2, TransitDays: 3},
				"sea_lcl": {PerCBM: 85, TransitDays: 7},
			},
			"china_to_korea": {
				"air":     {PerKG: 2.8, TransitDays: 2},
				"sea_lcl": {PerCBM: 70, TransitDays: 5},
			},
			"vietnam_to_us_west_coast": {
				"air":     {PerKG: 6.0, TransitDays: 8},
				"sea_lcl": {PerCBM: 195, TransitDays: 30},
				"sea_fcl": {PerCBM: 105, TransitDays: 34},
			},
		},

		SizeTiers: map[string]SizeTier{
			"XS": {WeightKG: 0.1, CBM: 0.0005},
			"S":  {WeightKG: 0.5, CBM: 0.01},
			"M":  {WeightKG: 1.5, CBM: 0.03},
			"L":  {WeightKG: 5.0, CBM: 0.1},
			"XL": {WeightKG: 25.0, CBM: 0.5},
		},

		Compliance: ComplianceTable{
			MaterialRequirements: map[string]MaterialRequirement{
				"Electronics / Battery": {
					Certifications: []string{"FCC", "UN38.3"},
					RiskLevel:      types.RiskHigh,
				},
				"Plastic / Silicone": {
					Certifications: []string{"CPC", "Prop 65"},
					RiskLevel:      types.RiskMedium,
				},
				"Fabric / Textile": {
					Certifications: []string{"CPSIA"},
					RiskLevel:      types.RiskMedium,
				},
				"Food Contact / Kitchen": {
					Certifications: []string{"FDA Food Contact"},
					RiskLevel:      types.RiskHigh,
				},
				"Metal / Steel": {
					Certifications: []string{"Prop 65"},
					RiskLevel:      types.RiskLow,
				},
				"Wood / Bamboo": {
					Certifications: []string{"Lacey Act", "CARB"},
					RiskLevel:      types.RiskMedium,
				},
			},
			Certifications: map[string]Certification{
				"FCC":              {CostRange: CostRange{Min: 800, Max: 1500, Average: 1150}},
				"UN38.3":           {CostRange: CostRange{Min: 1500, Max: 3000, Average: 2250}},
				"CPC":              {CostRange: CostRange{Min: 300, Max: 800, Average: 550}},
				"CPSIA":            {CostRange: CostRange{Min: 500, Max: 1200, Average: 850}},
				"FDA Food Contact": {CostRange: CostRange{Min: 1000, Max: 2500, Average: 1750}},
				"Prop 65":          {CostRange: CostRange{Min: 200, Max: 600, Average: 400}},
				"Lacey Act":        {CostRange: CostRange{Min: 150, Max: 400, Average: 275}},
				"CARB":             {CostRange: CostRange{Min: 500, Max: 1500, Average: 1000}},
			},
		},

		MarketplaceFees: map[string]float64{
			"Electronics":       0.08,
			"Home & Kitchen":    0.15,
			"Sports & Outdoors": 0.15,
			"Fashion":           0.17,
			"Health & Beauty":   0.15,
			"Toys & Games":      0.15,
			FeeDefaultKey:       0.15,
		},

		CogsBenchmarks: map[string]float64{
			"Electronics":       0.30,
			"Home & Kitchen":    0.22,
			"Sports & Outdoors": 0.25,
			"Fashion":           0.20,
			"Health & Beauty":   0.28,
			"Toys & Games":      0.25,
			CogsGeneralKey:      0.25,
		},

		MarketTokens: map[string]string{
			"us":      "us_west_coast",
			"usa":     "us_west_coast",
			"states":  "us_west_coast",
			"america": "us_west_coast",
			"canada":  "us_west_coast",
			"eu":      "eu",
			"europe":  "eu",
			"germany": "eu",
			"france":  "eu",
			"uk":      "eu",
			"japan":   "japan",
			"korea":   "korea",
		},
	}
}
