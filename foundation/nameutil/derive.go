package nameutil

import "strings"

// Parts holds cleaned name values. An empty string means the value is absent.
type Parts struct {
	First string
	Last  string
	Full  string
}

func (p Parts) empty() bool { return p.First == "" && p.Last == "" && p.Full == "" }

type DerivePolicy struct {
	// PreferSplit treats first/last as authoritative whenever one of them is present.
	PreferSplit bool
	// DeriveFull builds Full from First and Last when Full is absent.
	DeriveFull bool
	// SplitFull fills a missing First or Last from Full.
	SplitFull bool
}

// Derivation is the outcome of Derive together with what happened on the way.
type Derivation struct {
	Parts

	BuiltFull   bool
	UsedSplit   bool
	MissingLast bool
	MissingName bool
}

// Derive reconciles first, last and full name.
//
// With PreferSplit and at least one of First/Last present, those win and Full
// is only built when absent. Otherwise a present Full fills the missing side:
// the first word becomes First, the remaining words become Last. A one-word
// Full leaves Last absent and sets MissingLast.
func Derive(in Parts, pol DerivePolicy) Derivation {
	d := Derivation{Parts: in}
	hasSplit := in.First != "" || in.Last != ""

	applied := false
	switch {
	case pol.PreferSplit && hasSplit:
		applied = true
		if d.Full == "" && pol.DeriveFull {
			d.Full = joinNonEmpty(d.First, d.Last)
			d.BuiltFull = true
		}

	case strings.TrimSpace(d.Full) != "" && (d.First == "" || d.Last == "") && pol.SplitFull:
		applied = true
		words := strings.Fields(d.Full)
		if d.First == "" {
			d.First = words[0]
		}
		if d.Last == "" {
			if len(words) >= 2 {
				d.Last = strings.Join(words[1:], " ")
			} else {
				d.MissingLast = true
			}
		}
		d.UsedSplit = true
	}

	if !applied && hasSplit && d.Full == "" && pol.DeriveFull {
		d.Full = joinNonEmpty(d.First, d.Last)
		d.BuiltFull = true
	}

	d.MissingName = d.Parts.empty()
	return d
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
