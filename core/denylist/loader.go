// Package denylist - Table loading
// JSON is the primary format; CSV is accepted for legacy tables. The
// cache lives for the process lifetime; there is no live reload.
package denylist

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"landed-cost/internal/errors"
	"landed-cost/internal/logging"
)

var (
	loadOnce   sync.Once
	loaded     *TableMatcher
	loadFailed error
)

// Load builds the process-wide matcher. An empty path yields the
// built-in seed table; a configured path that cannot be read or
// parsed is a configuration error.
func Load(path string) (*TableMatcher, error) {
	loadOnce.Do(func() {
		loaded, loadFailed = build(path)
	})
	return loaded, loadFailed
}

func build(path string) (*TableMatcher, error) {
	if path == "" {
		return NewTableMatcher(builtinEntries()), nil
	}

	entries, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	logging.Info("denylist loaded", zap.String("path", path), zap.Int("entries", len(entries)))
	return NewTableMatcher(entries), nil
}

// ReadFile parses a denylist file. The format follows the extension:
// .csv for the legacy spreadsheet export, .yaml/.yml, or JSON.
func ReadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "cannot read denylist file %s", path)
	}

	var entries []Entry
	switch filepath.Ext(path) {
	case ".csv":
		entries, err = parseCSV(data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &entries)
	default:
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "cannot parse denylist file %s", path)
	}

	for i := range entries {
		if entries[i].SupplierID == "" {
			entries[i].SupplierID = fmt.Sprintf("S%06d", i)
		}
	}
	return entries, nil
}

// parseCSV reads the legacy format:
// supplier_id,company_name,risk_score,note (header row expected).
func parseCSV(data []byte) ([]Entry, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for i, record := range records {
		if i == 0 || len(record) < 4 {
			continue
		}
		score, _ := strconv.Atoi(strings.TrimSpace(record[2]))
		entries = append(entries, Entry{
			SupplierID:  strings.TrimSpace(record[0]),
			CompanyName: strings.TrimSpace(record[1]),
			RiskScore:   score,
			Note:        strings.TrimSpace(record[3]),
		})
	}
	return entries, nil
}

// builtinEntries is the seed table shipped with the binary.
func builtinEntries() []Entry {
	return []Entry{
		{
			SupplierID:  "S000001",
			CompanyName: "Shenzhen Golden Dragon Trading Co",
			RiskScore:   85,
			Note:        "Repeated QC failures on electronics orders; two chargeback disputes in 2024.",
		},
		{
			SupplierID:  "S000002",
			CompanyName: "Yiwu Sunrise Import Export Ltd",
			RiskScore:   72,
			Note:        "Shipped counterfeit branded goods; customs seizure on record.",
		},
		{
			SupplierID:  "S000003",
			CompanyName: "Guangzhou Evergreen Plastics",
			RiskScore:   64,
			Note:        "Missed three consecutive delivery windows; unresponsive after deposit.",
		},
		{
			SupplierID:  "S000004",
			CompanyName: "Ningbo Apex Metalworks",
			RiskScore:   58,
			Note:        "Substituted lower-grade steel without notice; failed salt spray test.",
		},
	}
}
