// Package nameutil cleans person names and derives first/last/full name triples.
package nameutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var romanNumerals = map[string]struct{}{
	"i": {}, "ii": {}, "iii": {}, "iv": {}, "v": {},
	"vi": {}, "vii": {}, "viii": {}, "ix": {}, "x": {},
}

var suffixes = map[string]string{
	"jr": "Jr",
	"sr": "Sr",
}

// SafeTitleCase fixes the casing of a single name token without touching
// intentional mixed-case spellings such as "McDonald" or "DeShawn".
// Hyphenated compounds are handled segment by segment.
func SafeTitleCase(token string) string {
	if !strings.Contains(token, "-") {
		return titleCaseWord(token)
	}
	parts := strings.Split(token, "-")
	for i, p := range parts {
		parts[i] = titleCaseWord(p)
	}
	return strings.Join(parts, "-")
}

func titleCaseWord(w string) string {
	if w == "" {
		return w
	}
	lower := strings.ToLower(w)
	if _, ok := romanNumerals[lower]; ok {
		return strings.ToUpper(w)
	}
	if s, ok := suffixes[lower]; ok {
		return s
	}
	if !isSingleCase(w) {
		return w
	}

	r, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToTitle(r)) + lower[size:]
}

// isSingleCase reports whether w has no upper-case letters or no lower-case letters.
func isSingleCase(w string) bool {
	hasUpper, hasLower := false, false
	for _, r := range w {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
		if hasUpper && hasLower {
			return false
		}
	}
	return true
}

// TitleCaseWords applies SafeTitleCase to every space-separated token.
func TitleCaseWords(s string) string {
	tokens := strings.Split(s, " ")
	for i, t := range tokens {
		tokens[i] = SafeTitleCase(t)
	}
	return strings.Join(tokens, " ")
}
