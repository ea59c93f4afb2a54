package contactutil

import (
	"regexp"
	"strings"

	normalizer "github.com/dimuska139/go-email-normalizer/v5"
)

const mailtoPrefix = "mailto:"

var (
	// emailCandidateRe finds a local@domain.tld-like token. Whitespace, angle
	// brackets, quotes, commas, colons and semicolons delimit it.
	emailCandidateRe = regexp.MustCompile(`[^\s<>"',:;@]+@[^\s<>"',:;@]+\.[^\s<>"',:;@]+`)
	emailShapeRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	providerNormalizer = normalizer.NewNormalizer()
)

// StripMailto removes a case-insensitive "mailto:" prefix.
func StripMailto(s string) string {
	if len(s) >= len(mailtoPrefix) && strings.EqualFold(s[:len(mailtoPrefix)], mailtoPrefix) {
		return s[len(mailtoPrefix):]
	}
	return s
}

// ExtractEmail returns the first address-like token in s, for example the
// address part of `John Smith <john@example.com>`. Trailing sentence dots are dropped.
func ExtractEmail(s string) (string, bool) {
	m := strings.TrimRight(emailCandidateRe.FindString(s), ".")
	if m == "" || !emailShapeRe.MatchString(m) {
		return "", false
	}
	return m, true
}

// IsEmailShape is a conservative format check: exactly one '@', no whitespace,
// and a dot inside the domain part. It is not RFC 5322 validation.
func IsEmailShape(s string) bool {
	return emailShapeRe.MatchString(s)
}

// CanonicalEmail applies provider-specific rules, such as dropping dots and
// +tags for Gmail, on top of lowercasing.
func CanonicalEmail(s string) string {
	return strings.ToLower(providerNormalizer.Normalize(s))
}
