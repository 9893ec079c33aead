// Package refdata - Table loading
package refdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"landed-cost/internal/config"
	"landed-cost/internal/errors"
	"landed-cost/internal/logging"
)

var (
	loadOnce   sync.Once
	loadedSet  *Tables
	loadFailed error
)

// Load builds the process-wide reference table set. The first call
// reads any configured data files; subsequent calls return the same
// instance (single-flight, no re-read). A missing or corrupt data
// file is a configuration error and the engine must not serve.
func Load(cfg *config.DataConfig) (*Tables, error) {
	loadOnce.Do(func() {
		loadedSet, loadFailed = build(cfg)
	})
	return loadedSet, loadFailed
}

// build assembles tables from the built-in seed plus file overrides.
func build(cfg *config.DataConfig) (*Tables, error) {
	t := Builtin()
	if cfg == nil {
		cfg = &config.DataConfig{}
	}

	if cfg.Tariffs != "" {
		var file struct {
			Rates map[string]map[string]float64 `json:"rates" yaml:"rates"`
		}
		if err := decodeFile(cfg.Tariffs, &file); err != nil {
			return nil, err
		}
		t.Tariffs = file.Rates
	}

	if cfg.Freight != "" {
		var file struct {
			Routes    map[string]map[string]FreightEntry `json:"routes" yaml:"routes"`
			SizeTiers map[string]SizeTier                `json:"sizeTierMultipliers" yaml:"sizeTierMultipliers"`
		}
		if err := decodeFile(cfg.Freight, &file); err != nil {
			return nil, err
		}
		t.Routes = file.Routes
		if file.SizeTiers != nil {
			t.SizeTiers = file.SizeTiers
		}
	}

	if cfg.Compliance != "" {
		var file ComplianceTable
		if err := decodeFile(cfg.Compliance, &file); err != nil {
			return nil, err
		}
		t.Compliance = file
	}

	if cfg.MarketplaceFees != "" {
		var file struct {
			ReferralFees map[string]float64 `json:"referralFees" yaml:"referralFees"`
		}
		if err := decodeFile(cfg.MarketplaceFees, &file); err != nil {
			return nil, err
		}
		t.MarketplaceFees = file.ReferralFees
	}

	if cfg.CogsBenchmarks != "" {
		var file struct {
			Categories map[string]struct {
				FactoryMarginPct float64 `json:"factory_margin_pct" yaml:"factory_margin_pct"`
			} `json:"categories" yaml:"categories"`
		}
		if err := decodeFile(cfg.CogsBenchmarks, &file); err != nil {
			return nil, err
		}
		benchmarks := make(map[string]float64, len(file.Categories))
		for category, entry := range file.Categories {
			benchmarks[category] = entry.FactoryMarginPct
		}
		t.CogsBenchmarks = benchmarks
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	logging.Info("reference tables loaded",
		zap.Int("tariff_codes", len(t.Tariffs)),
		zap.Int("routes", len(t.Routes)),
		zap.Int("material_keys", len(t.Compliance.MaterialRequirements)))
	return t, nil
}

// decodeFile reads a JSON or YAML data file, selected by extension.
func decodeFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.TypeConfig, err, "cannot read reference data file %s", path)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return errors.Wrapf(errors.TypeConfig, err, "cannot parse reference data file %s", path)
	}
	return nil
}
