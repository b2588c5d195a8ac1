package dataset

import (
	"fmt"
	"strings"
)

// NormalizeHeader maps one raw CSV header to its canonical form: trimmed,
// lowercased, internal whitespace runs and hyphens replaced by a single
// underscore. Normalizing an already-canonical name is a no-op.
func NormalizeHeader(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", " ")
	// strings.Fields collapses runs of whitespace, so headers like
	// "thinness  1-19 years" normalize without doubled separators.
	return strings.Join(strings.Fields(s), "_")
}

// NormalizeHeaders canonicalizes a full header row, preserving order.
// An empty result or two raw names collapsing to the same canonical name is
// a fatal SchemaError: downstream lookups would be ambiguous.
func NormalizeHeaders(raw []string) ([]string, error) {
	out := make([]string, len(raw))
	seen := make(map[string]string, len(raw))
	for i, r := range raw {
		n := NormalizeHeader(r)
		if n == "" {
			return nil, &SchemaError{Reason: fmt.Sprintf("header %d (%q) normalizes to an empty name", i, r)}
		}
		if prev, dup := seen[n]; dup {
			return nil, &SchemaError{Reason: fmt.Sprintf("headers %q and %q both normalize to %q", prev, r, n)}
		}
		seen[n] = r
		out[i] = n
	}
	return out, nil
}
