package piiutil

import "unicode"

const (
	shortDigitCountThreshold = 4
	keepShortDigits          = 1
	keepLongDigits           = 4
)

func isDigit(r rune) bool        { return unicode.IsDigit(r) }
func isAlphanumeric(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

// countRunes reports how many runes satisfy keep.
func countRunes(runes []rune, keep func(rune) bool) int {
	n := 0
	for _, r := range runes {
		if keep(r) {
			n++
		}
	}
	return n
}

// maskTail stars every rune matching significant except the last keep of them.
// Other runes are left in place. keep below one is treated as one.
func maskTail(runes []rune, keep int, significant func(rune) bool) string {
	if keep < 1 {
		keep = 1
	}
	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if !significant(runes[i]) {
			continue
		}
		seen++
		if seen > keep {
			runes[i] = '*'
		}
	}
	return string(runes)
}

// digitsToKeep is one for short numbers and four otherwise.
func digitsToKeep(total int) int {
	if total <= shortDigitCountThreshold {
		return keepShortDigits
	}
	return keepLongDigits
}
