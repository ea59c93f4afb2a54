package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// WhitespacePolicy toggles the steps of Clean. The zero value leaves text untouched.
type WhitespacePolicy struct {
	FoldNFKC           bool
	RemoveZeroWidth    bool
	NormalizeNewlines  bool
	TrimEdges          bool
	CollapseSpaces     bool
	CollapseBlankLines bool
}

var blankLinesRe = regexp.MustCompile(`\n{3,}`)

// Clean applies the enabled steps in a fixed order: NFKC folding, zero-width
// removal, line ending normalization, edge trim, per-line space collapse and
// blank line collapse. The result may be empty.
func Clean(s string, p WhitespacePolicy) string {
	if p.FoldNFKC {
		s = norm.NFKC.String(s)
	}
	if p.RemoveZeroWidth {
		s = RemoveZeroWidth(s)
	}
	if p.NormalizeNewlines {
		s = NormalizeNewlines(s)
	}
	if p.TrimEdges {
		s = TrimEdges(s)
	}
	if p.CollapseSpaces {
		s = CollapseHorizontal(s)
	}
	if p.CollapseBlankLines {
		s = CollapseBlankLines(s)
	}
	return s
}

// IsZeroWidth reports U+200B..U+200D and U+FEFF.
func IsZeroWidth(r rune) bool {
	return (r >= '\u200B' && r <= '\u200D') || r == '\uFEFF'
}

func RemoveZeroWidth(s string) string {
	if !strings.ContainsFunc(s, IsZeroWidth) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if IsZeroWidth(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeNewlines rewrites CRLF and lone CR to LF.
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// TrimEdges trims leading and trailing whitespace. When s ends with a line
// terminator and something is left after trimming, one terminator of the same
// kind is put back, so line-oriented text keeps its final newline.
func TrimEdges(s string) string {
	term := trailingTerminator(s)
	out := strings.TrimSpace(s)
	if out == "" || term == "" {
		return out
	}
	return out + term
}

func trailingTerminator(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(s, "\n"):
		return "\n"
	case strings.HasSuffix(s, "\r"):
		return "\r"
	default:
		return ""
	}
}

func isLineBreak(r rune) bool { return r == '\n' || r == '\r' }

// IsHorizontalSpace reports whitespace that does not break a line.
func IsHorizontalSpace(r rune) bool {
	return unicode.IsSpace(r) && !isLineBreak(r)
}

// CollapseHorizontal folds runs of horizontal whitespace into one space within
// each line and drops horizontal whitespace before every line break and at the end.
func CollapseHorizontal(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range s {
		switch {
		case isLineBreak(r):
			pending = false
			b.WriteRune(r)
		case IsHorizontalSpace(r):
			pending = true
		default:
			if pending {
				b.WriteByte(' ')
				pending = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CollapseBlankLines reduces three or more consecutive LFs to exactly one blank line.
func CollapseBlankLines(s string) string {
	return blankLinesRe.ReplaceAllString(s, "\n\n")
}
