// Package denylist_test - File parsing tests
package denylist_test

import (
	"os"
	"path/filepath"
	"testing"

	"landed-cost/core/denylist"
	"landed-cost/internal/errors"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFileJSON(t *testing.T) {
	path := writeTemp(t, "denylist.json", `[
		{"supplier_id": "S000009", "company_name": "Bad Actors Ltd", "risk_score": 90, "note": "fraud"},
		{"company_name": "No ID Trading", "risk_score": 40, "note": "late"}
	]`)

	entries, err := denylist.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].SupplierID != "S000009" || entries[0].RiskScore != 90 {
		t.Errorf("first entry = %+v", entries[0])
	}
	// Missing IDs are backfilled from the table position.
	if entries[1].SupplierID != "S000001" {
		t.Errorf("backfilled ID = %q, want S000001", entries[1].SupplierID)
	}
}

func TestReadFileCSV(t *testing.T) {
	path := writeTemp(t, "denylist.csv",
		"supplier_id,company_name,risk_score,note\n"+
			"S000010,Legacy Exports Inc,66,chargebacks\n"+
			"S000011,Shady Goods Co,80,seized at customs\n")

	entries, err := denylist.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[1].CompanyName != "Shady Goods Co" || entries[1].RiskScore != 80 {
		t.Errorf("second entry = %+v", entries[1])
	}
}

func TestReadFileYAML(t *testing.T) {
	path := writeTemp(t, "denylist.yaml", `
- supplier_id: S000012
  company_name: Dubious Traders
  risk_score: 55
  note: unresponsive
`)

	entries, err := denylist.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].CompanyName != "Dubious Traders" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := denylist.ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("error = %v, want a config error", err)
	}
}

func TestReadFileCorrupt(t *testing.T) {
	path := writeTemp(t, "denylist.json", "{not json")

	_, err := denylist.ReadFile(path)
	if err == nil {
		t.Fatal("expected an error for corrupt JSON")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("error = %v, want a config error", err)
	}
}

// Load is once-per-process; the built-in table ships with at least one
// screenable entry.
func TestLoadBuiltinSeed(t *testing.T) {
	m, err := denylist.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Entries()) == 0 {
		t.Fatal("built-in denylist is empty")
	}

	again, err := denylist.Load("some/other/path.json")
	if err != nil {
		t.Fatal(err)
	}
	if again != m {
		t.Error("second Load returned a different instance")
	}
}
