// Package denylist screens supplier identifiers against a table of
// flagged suppliers.
//
// Matching is deliberately lenient: plain substring containment, not
// token-aware. A hit only warns a human reviewer, so false positives
// are tolerated; two companies whose names contain each other will
// both match. That over-matching is documented behavior, not a bug.
package denylist

import (
	"net/url"
	"strings"
)

// Entry is one denylisted supplier.
type Entry struct {
	// SupplierID is unique within the table.
	SupplierID string `json:"supplier_id" yaml:"supplier_id"`

	// CompanyName is the registered company name.
	CompanyName string `json:"company_name" yaml:"company_name"`

	// RiskScore is 0-100, higher is worse.
	RiskScore int `json:"risk_score" yaml:"risk_score"`

	// Note is the reviewer's qualitative note, quoted verbatim in
	// risk output.
	Note string `json:"note" yaml:"note"`
}

// Matcher screens supplier identifiers. Isolated behind an interface
// so a stricter tokenizing matcher can replace the substring one
// without touching callers.
type Matcher interface {
	// Check matches a free-text name, ID, or other identifier.
	// Returns nil when nothing matches.
	Check(identifier string) *Entry

	// CheckURL extracts candidate company names from a marketplace
	// URL and checks each; a URL that yields no candidates is checked
	// as a raw string.
	CheckURL(rawURL string) *Entry
}

// TableMatcher is the substring Matcher over an in-memory table.
// Table order is significant: the first entry that matches wins.
type TableMatcher struct {
	entries []Entry
}

// NewTableMatcher creates a matcher over the given entries.
func NewTableMatcher(entries []Entry) *TableMatcher {
	return &TableMatcher{entries: entries}
}

// Entries returns the underlying table.
func (m *TableMatcher) Entries() []Entry {
	return m.entries
}

// Check matches an identifier against the table. Per entry, in table
// order: exact company-name equality, then bidirectional substring
// containment, then case-insensitive supplier-ID equality. Empty or
// whitespace-only input never matches.
func (m *TableMatcher) Check(identifier string) *Entry {
	normalized := strings.ToLower(strings.TrimSpace(identifier))
	if normalized == "" {
		return nil
	}

	for i := range m.entries {
		entry := &m.entries[i]
		company := strings.ToLower(entry.CompanyName)

		if company == normalized {
			return entry
		}
		if company != "" && (strings.Contains(company, normalized) || strings.Contains(normalized, company)) {
			return entry
		}
		if strings.ToLower(entry.SupplierID) == normalized {
			return entry
		}
	}
	return nil
}

// genericSubdomains are hostname labels that never identify a company.
var genericSubdomains = map[string]bool{
	"www": true,
	"m":   true,
	"en":  true,
}

// CheckURL extracts candidate company tokens from a marketplace URL:
// a /company/<slug> path segment, any path segment longer than three
// characters, and a non-generic subdomain label. Candidates are
// URL-decoded and de-hyphenated before checking. If parsing or
// extraction yields nothing, the raw URL string is checked instead.
func (m *TableMatcher) CheckURL(rawURL string) *Entry {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Hostname() == "" {
		return m.Check(trimmed)
	}

	segments := splitPath(parsed.Path)

	// /company/<slug> is the strongest signal.
	for i, segment := range segments {
		if segment == "company" && i+1 < len(segments) {
			if hit := m.Check(decodeCandidate(segments[i+1])); hit != nil {
				return hit
			}
		}
	}

	for _, segment := range segments {
		if len(segment) > 3 {
			if hit := m.Check(decodeCandidate(segment)); hit != nil {
				return hit
			}
		}
	}

	labels := strings.Split(parsed.Hostname(), ".")
	if len(labels) >= 3 && !genericSubdomains[labels[0]] {
		if hit := m.Check(decodeCandidate(labels[0])); hit != nil {
			return hit
		}
	}

	return m.Check(trimmed)
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// decodeCandidate URL-decodes a path token and turns hyphens into
// spaces, recovering "golden-dragon-trading" as "golden dragon
// trading".
func decodeCandidate(segment string) string {
	if decoded, err := url.PathUnescape(segment); err == nil {
		segment = decoded
	}
	return strings.ReplaceAll(segment, "-", " ")
}
