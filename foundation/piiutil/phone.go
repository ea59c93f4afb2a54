package piiutil

import "strings"

// MaskPhone keeps separators and the last digits of a phone value:
// one digit when there are at most four, otherwise four.
//
//	"+1234567890" -> "+******7890"
//	"+1234"       -> "+***4"
//	"AB-CD"       -> "**-*D"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	if n := countRunes(runes, isDigit); n > 0 {
		return maskTail(runes, digitsToKeep(n), isDigit)
	}
	return maskTail(runes, 1, isAlphanumeric)
}
