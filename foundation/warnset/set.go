package warnset

import (
	"slices"
	"strings"
)

// Mode selects how repeated codes are accumulated.
type Mode string

const (
	// ModeDedupe keeps the first occurrence of every code, in insertion order.
	ModeDedupe Mode = "dedupe"
	// ModeAll appends every occurrence.
	ModeAll Mode = "all"
)

// ParseMode trims and lowercases s. Empty input maps to ModeDedupe.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeDedupe:
		return ModeDedupe, true
	case ModeAll:
		return ModeAll, true
	default:
		return "", false
	}
}

// Set is an ordered collection of warning codes.
// A Set belongs to a single record run and is not safe for concurrent use.
type Set struct {
	mode  Mode
	codes []Code
	seen  map[Code]struct{}
}

func New(mode Mode) *Set {
	if mode != ModeAll {
		mode = ModeDedupe
	}
	return &Set{mode: mode}
}

func (s *Set) Mode() Mode {
	if s == nil {
		return ModeDedupe
	}
	return s.mode
}

// Add records c. Adding to a nil Set or adding an empty code is a no-op.
func (s *Set) Add(c Code) {
	if s == nil || c == "" {
		return
	}
	if s.mode == ModeDedupe {
		if _, ok := s.seen[c]; ok {
			return
		}
		if s.seen == nil {
			s.seen = make(map[Code]struct{}, 4)
		}
		s.seen[c] = struct{}{}
	}
	s.codes = append(s.codes, c)
}

// Merge adds every code of other, honoring the receiver's mode.
func (s *Set) Merge(other *Set) {
	if s == nil || other == nil {
		return
	}
	for _, c := range other.codes {
		s.Add(c)
	}
}

func (s *Set) Has(c Code) bool {
	if s == nil {
		return false
	}
	return slices.Contains(s.codes, c)
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.codes)
}

// Codes returns a snapshot of the recorded codes.
func (s *Set) Codes() []Code {
	if s == nil {
		return nil
	}
	return slices.Clone(s.codes)
}

// Strings returns the codes as a non-nil string slice, ready for an output record.
func (s *Set) Strings() []string {
	out := make([]string, 0, s.Len())
	if s == nil {
		return out
	}
	for _, c := range s.codes {
		out = append(out, string(c))
	}
	return out
}
