package piiutil

import "strings"

// MaskEmail keeps the first and last rune of the local part and the whole domain.
//
//	"user@example.com" -> "u**r@example.com"
//	"ab@example.com"   -> "a*@example.com"
//	"weird"            -> "w***d"
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return maskToken(email)
	}

	return maskToken(email[:at]) + email[at:]
}

// maskToken keeps the first and last rune and stars the middle.
func maskToken(s string) string {
	runes := []rune(s)
	switch n := len(runes); n {
	case 0, 1:
		return s
	case 2:
		return string(runes[0]) + "*"
	default:
		var b strings.Builder
		b.Grow(len(s))
		b.WriteRune(runes[0])
		b.WriteString(strings.Repeat("*", n-2))
		b.WriteRune(runes[n-1])
		return b.String()
	}
}
