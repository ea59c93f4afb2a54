package contactutil

import (
	"regexp"
	"strings"
)

const (
	minE164Digits = 8
	maxE164Digits = 15

	usCountry     = "US"
	usCallingCode = "1"
	usLocalDigits = 10
)

var (
	phoneSeparatorRe = regexp.MustCompile(`[;|,]`)
	phoneExtensionRe = regexp.MustCompile(`(?i)\s*(?:ext\.?|x)\s*\d+\s*$`)
	nonDigitRe       = regexp.MustCompile(`\D`)
)

// PhoneOutcome classifies the result of NormalizePhone.
type PhoneOutcome int

const (
	PhoneOK PhoneOutcome = iota
	// PhoneInvalid: no digits, or a digit count that cannot be a number.
	PhoneInvalid
	// PhoneNeedsCountry: a bare national number whose country cannot be inferred.
	PhoneNeedsCountry
)

func (o PhoneOutcome) String() string {
	switch o {
	case PhoneOK:
		return "ok"
	case PhoneInvalid:
		return "invalid"
	case PhoneNeedsCountry:
		return "needs_country"
	default:
		return "unknown"
	}
}

type PhonePolicy struct {
	SplitMultiple  bool
	StripExtension bool
	ValidateLength bool
	InferUSLocal   bool
}

type PhoneResult struct {
	// E164 is "+" followed by digits; set only when Outcome is PhoneOK.
	E164          string
	Outcome       PhoneOutcome
	MultipleFound bool
	HadExtension  bool
}

// FirstPhone splits s on ';', '|' and ',' and returns the first non-empty
// trimmed segment. multiple is true when there are at least two such segments.
func FirstPhone(s string) (first string, multiple bool) {
	if !phoneSeparatorRe.MatchString(s) {
		return strings.TrimSpace(s), false
	}
	n := 0
	for _, seg := range phoneSeparatorRe.Split(s, -1) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if n == 0 {
			first = seg
		}
		n++
	}
	return first, n > 1
}

// StripExtension removes a trailing "ext. 12", "ext12" or "x12" suffix.
func StripExtension(s string) (string, bool) {
	loc := phoneExtensionRe.FindStringIndex(s)
	if loc == nil {
		return s, false
	}
	return s[:loc[0]], true
}

// NormalizePhone converts raw into an E.164-like string. country must be an
// uppercase ISO2 code; only "US" national numbers are ever inferred.
func NormalizePhone(raw, country string, p PhonePolicy) PhoneResult {
	var res PhoneResult

	s := strings.TrimSpace(raw)
	if p.SplitMultiple {
		s, res.MultipleFound = FirstPhone(s)
	}
	if p.StripExtension {
		var stripped bool
		s, stripped = StripExtension(s)
		res.HadExtension = stripped
	}

	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "00") {
		s = "+" + s[2:]
	}

	plus := strings.HasPrefix(s, "+")
	digits := nonDigitRe.ReplaceAllString(s, "")
	if digits == "" {
		res.Outcome = PhoneInvalid
		return res
	}

	if plus {
		if p.ValidateLength && (len(digits) < minE164Digits || len(digits) > maxE164Digits) {
			res.Outcome = PhoneInvalid
			return res
		}
		res.E164 = "+" + digits
		return res
	}

	if country != usCountry || !p.InferUSLocal {
		res.Outcome = PhoneNeedsCountry
		return res
	}

	switch {
	case len(digits) == usLocalDigits:
		res.E164 = "+" + usCallingCode + digits
	case len(digits) == usLocalDigits+1 && strings.HasPrefix(digits, usCallingCode):
		res.E164 = "+" + digits
	case len(digits) == usLocalDigits+1:
		// Trunk-prefixed national format of another country, e.g. UK "020 ...".
		res.Outcome = PhoneNeedsCountry
	default:
		res.Outcome = PhoneInvalid
	}
	return res
}
