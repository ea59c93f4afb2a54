package nameutil

import (
	"strings"
	"unicode"

	"github.com/vortex-fintech/fieldnorm/foundation/textutil"
)

// edgeRunes are stripped from both ends of a name. The period is not listed
// so initials ("J.") and suffixes ("Jr.") survive.
const edgeRunes = ",;:!?\"'`()[]{}<>*_~/\\|-‘’‚“”„«»"

func isEdgeRune(r rune) bool {
	return strings.ContainsRune(edgeRunes, r)
}

// CleanValue strips edge punctuation, collapses internal whitespace and
// optionally title-cases every token. stripped reports whether edge
// punctuation was removed. An empty out means nothing usable was left.
func CleanValue(s string, titleCase bool) (out string, stripped bool) {
	trimmed := strings.TrimSpace(s)
	core := strings.TrimFunc(trimmed, func(r rune) bool {
		return isEdgeRune(r) || unicode.IsSpace(r)
	})
	stripped = core != trimmed

	core = textutil.CollapseSpaces(core)
	if core == "" {
		return "", stripped
	}
	if titleCase {
		core = TitleCaseWords(core)
	}
	return core, stripped
}
