package normalize

import (
	"sort"
	"strings"

	"github.com/vortex-fintech/fieldnorm/foundation/pathutil"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

type fieldRef struct {
	key  string
	path string
}

// detectFunc reports whether a top-level key belongs to a domain.
type detectFunc func(key string, v any) bool

// fieldRefs picks the fields to normalize in rec: the configured FIELD_MAP,
// else auto-detected keys when AUTO_DETECT is on, else domain defaults.
// The result is sorted by output key.
func (b *base) fieldRefs(rec Record, defaults map[string]string, detect detectFunc) []fieldRef {
	switch {
	case len(b.common.FieldMap) > 0:
		return sortedRefs(b.common.FieldMap)
	case b.common.AutoDetect && detect != nil:
		return detectRefs(rec, detect)
	default:
		return sortedRefs(defaults)
	}
}

func sortedRefs(m map[string]string) []fieldRef {
	out := make([]fieldRef, 0, len(m))
	for k, p := range m {
		out = append(out, fieldRef{key: k, path: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

func detectRefs(rec Record, detect detectFunc) []fieldRef {
	var out []fieldRef
	for k, v := range rec {
		if isEmittedKey(k) || !detect(k, v) {
			continue
		}
		out = append(out, fieldRef{key: k, path: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

// isEmittedKey reports keys written by processors themselves.
func isEmittedKey(k string) bool {
	return strings.HasSuffix(k, warningsSuffix) || strings.HasSuffix(k, changedSuffix)
}

// keywordDetector matches string values under keys containing any keyword.
func keywordDetector(keywords ...string) detectFunc {
	return func(key string, v any) bool {
		if _, ok := v.(string); !ok {
			return false
		}
		lk := strings.ToLower(key)
		for _, kw := range keywords {
			if strings.Contains(lk, kw) {
				return true
			}
		}
		return false
	}
}

func anyResolves(rec Record, refs []fieldRef) bool {
	for _, r := range refs {
		if pathutil.Has(rec, r.path) {
			return true
		}
	}
	return false
}

// mapRefs resolves each ref and maps present values through fn. An absent
// path records FIELD_MISSING and yields an empty field.
func mapRefs(rec Record, refs []fieldRef, w *warnset.Set, fn func(key string, raw any) any) []fieldOut {
	out := make([]fieldOut, 0, len(refs))
	for _, r := range refs {
		raw, found := pathutil.Resolve(rec, r.path)
		if !found {
			w.Add(warnset.FieldMissing)
			out = append(out, fieldOut{key: r.key})
			continue
		}
		out = append(out, fieldOut{key: r.key, before: raw, after: fn(r.key, raw)})
	}
	return out
}
