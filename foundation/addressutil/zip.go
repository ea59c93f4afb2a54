// Package addressutil normalizes US postal fields: ZIP codes and state names.
package addressutil

import "strings"

// ZIP extracts a US ZIP code from s. All digits are joined, the first five
// form the ZIP, and with plus4 the next four form the extension. Fewer than
// five digits is not a ZIP.
func ZIP(s string, plus4 bool) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if len(digits) < 5 {
		return "", false
	}
	if plus4 && len(digits) >= 9 {
		return digits[:5] + "-" + digits[5:9], true
	}
	return digits[:5], true
}

// PadZIP left-pads a 3 or 4 digit ZIP that lost its leading zeros, as
// 02134 does when stored as the number 2134.
func PadZIP(s string) (string, bool) {
	if n := len(s); n < 3 || n > 4 || strings.Trim(s, "0123456789") != "" {
		return s, false
	}
	return strings.Repeat("0", 5-len(s)) + s, true
}
