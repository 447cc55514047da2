package region

import "slices"

// =============================================================================
// Metadata Table
// =============================================================================

// Meta is one metadata record: the canonical code for a display name.
// Datasets store the code under "alpha3" or "code"; both are accepted.
type Meta struct {
	Alpha3 string `json:"alpha3,omitempty"`
	Code   string `json:"code,omitempty"`
}

// ResolvedCode returns the record's canonical code, preferring the alpha3
// field. Empty when the record carries no code (unrecognized territory).
func (m Meta) ResolvedCode() string {
	if m.Alpha3 != "" {
		return m.Alpha3
	}
	return m.Code
}

// Table maps region display names to metadata records. It is built once from
// an external document and read-only afterwards.
type Table map[string]Meta

// =============================================================================
// Universe - Recognized Codes
// =============================================================================

// Universe is the set of recognized region codes. It is constructed once
// from a metadata table and never mutated afterwards; the adjacency builder
// consults it to decide which codes may appear in output.
type Universe map[string]struct{}

// Universe collects every non-empty code in the table.
func (t Table) Universe() Universe {
	u := make(Universe, len(t))
	for _, m := range t {
		if code := m.ResolvedCode(); code != "" {
			u[code] = struct{}{}
		}
	}
	return u
}

// Contains reports whether code is a recognized region code.
func (u Universe) Contains(code string) bool {
	_, ok := u[code]
	return ok
}

// Codes returns the universe as a sorted slice.
func (u Universe) Codes() []string {
	codes := make([]string, 0, len(u))
	for code := range u {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
