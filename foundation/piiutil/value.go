package piiutil

import (
	"fmt"
	"strings"
)

// MaskName keeps the initial of every word.
//
//	"Ada Lovelace" -> "A** L*******"
func MaskName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(w)
		words[i] = string(runes[0]) + strings.Repeat("*", len(runes)-1)
	}
	return strings.Join(words, " ")
}

// ForLog returns a log-safe rendition of a field value handled by the given
// domain. Strings are masked with the domain's rule, nil stays nil and any
// other value is reduced to its type.
func ForLog(domain string, v any) any {
	if v == nil {
		return nil
	}

	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("<%T>", v)
	}

	switch domain {
	case "email":
		return MaskEmail(s)
	case "phone":
		return MaskPhone(s)
	case "name":
		return MaskName(s)
	default:
		return fmt.Sprintf("<string len=%d>", len([]rune(s)))
	}
}
