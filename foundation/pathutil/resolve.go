// Package pathutil looks up values in decoded JSON-like records by dotted path.
package pathutil

import "strings"

const separator = "."

// Split parses a dotted path such as "contact.email" into its segments.
// It reports false for an empty path or a path containing an empty segment ("a..b", ".a", "a.").
func Split(path string) ([]string, bool) {
	if path == "" {
		return nil, false
	}
	segs := strings.Split(path, separator)
	for _, s := range segs {
		if s == "" {
			return nil, false
		}
	}
	return segs, true
}

// Resolve walks rec along path. At every segment the current value must be a
// map[string]any that owns the key; otherwise the lookup reports not found.
//
// A key that is present with a nil value is reported as found.
func Resolve(rec map[string]any, path string) (any, bool) {
	segs, ok := Split(path)
	if !ok || rec == nil {
		return nil, false
	}

	var cur any = rec
	for _, seg := range segs {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := m[seg]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// Has reports whether path resolves in rec.
func Has(rec map[string]any, path string) bool {
	_, ok := Resolve(rec, path)
	return ok
}
