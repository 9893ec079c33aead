// Package api_test - HTTP surface tests
package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"landed-cost/api"
	"landed-cost/core/denylist"
	"landed-cost/core/engine"
	"landed-cost/core/refdata"
	"landed-cost/core/report"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()
	tables := refdata.Builtin()
	if err := tables.Validate(); err != nil {
		t.Fatal(err)
	}
	suppliers := denylist.NewTableMatcher([]denylist.Entry{
		{SupplierID: "S000001", CompanyName: "Shenzhen Golden Dragon Trading Co", RiskScore: 85, Note: "QC failures"},
	})
	return api.NewServer("test", engine.New(tables, suppliers), report.NewAssembler())
}

func TestAnalyzeHappyPath(t *testing.T) {
	server := newTestServer(t)

	body := `{
		"productName": "Wireless Headphones",
		"category": "Electronics",
		"hsCode": "8518.30",
		"targetMarket": "US Amazon FBA",
		"shippingMethod": "sea_lcl",
		"sizeTier": "S: Shoe Box size",
		"quantity": 1000,
		"targetRetailPrice": 49.99
	}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("no X-Request-ID header")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var doc struct {
		Meta struct {
			Currency        string `json:"currency"`
			ConfidenceLevel string `json:"confidenceLevel"`
		} `json:"meta"`
		CostOverview struct {
			DDPPerUnitRange struct {
				Low  float64 `json:"low"`
				High float64 `json:"high"`
			} `json:"ddpPerUnitRange"`
		} `json:"costOverview"`
		RiskAnalysis struct {
			OverallRiskLevel string `json:"overallRiskLevel"`
		} `json:"riskAnalysis"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("cannot decode report: %v", err)
	}
	if doc.Meta.Currency != "USD" {
		t.Errorf("currency = %q", doc.Meta.Currency)
	}
	if doc.CostOverview.DDPPerUnitRange.Low <= 0 {
		t.Errorf("ddp low = %v, want > 0", doc.CostOverview.DDPPerUnitRange.Low)
	}
	if doc.CostOverview.DDPPerUnitRange.High < doc.CostOverview.DDPPerUnitRange.Low {
		t.Error("ddp range inverted")
	}
	switch doc.RiskAnalysis.OverallRiskLevel {
	case "low", "medium", "high":
	default:
		t.Errorf("overallRiskLevel = %q, want the lowercase wire form", doc.RiskAnalysis.OverallRiskLevel)
	}
}

func TestAnalyzeValidationFailure(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"quantity": 10}`))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error code = %q, want VALIDATION_ERROR", resp.Error.Code)
	}
	if !strings.Contains(resp.Error.Message, "targetMarket") {
		t.Errorf("error message does not name the field: %q", resp.Error.Message)
	}
}

func TestAnalyzeMalformedJSON(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Code != "INVALID_JSON" {
		t.Errorf("error code = %q, want INVALID_JSON", resp.Error.Code)
	}
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "healthy" || resp["version"] != "test" {
		t.Errorf("health = %v", resp)
	}
}

func TestVersion(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["version"] != "test" {
		t.Errorf("version = %v", resp)
	}
}

func TestAnalyzeDenylistedSupplier(t *testing.T) {
	server := newTestServer(t)

	body := `{
		"targetMarket": "US",
		"supplier": "Golden Dragon",
		"quantity": 500,
		"targetRetailPrice": 15
	}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var doc struct {
		RiskAnalysis struct {
			OverallRiskLevel string   `json:"overallRiskLevel"`
			CommercialRisks  []string `json:"commercialRisks"`
		} `json:"riskAnalysis"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.RiskAnalysis.OverallRiskLevel != "high" {
		t.Errorf("overallRiskLevel = %q, want high after a denylist hit", doc.RiskAnalysis.OverallRiskLevel)
	}
}
