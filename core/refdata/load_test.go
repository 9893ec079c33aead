// Package refdata_test - Single-flight loading
package refdata_test

import (
	"testing"

	"landed-cost/core/refdata"
	"landed-cost/internal/config"
)

// Load is once-per-process: the first call builds the tables and every
// later call returns the same instance regardless of its argument.
func TestLoadIsSingleFlight(t *testing.T) {
	first, err := refdata.Load(nil)
	if err != nil {
		t.Fatalf("Load(nil) failed: %v", err)
	}
	if first == nil {
		t.Fatal("Load(nil) returned nil tables")
	}

	again, err := refdata.Load(&config.DataConfig{Tariffs: "/does/not/exist.json"})
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if again != first {
		t.Error("second Load returned a different instance")
	}
}
