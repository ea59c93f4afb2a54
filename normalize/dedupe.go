package normalize

import (
	"encoding/json"

	"github.com/vortex-fintech/fieldnorm/foundation/pathutil"
)

// Dedupe keeps the first successful result for every distinct tuple of values
// at keys and drops later repeats. Values compare like changed fields do, so
// 5 and "5" are equal, and an absent path equals null. Failed results are
// always kept. Order is preserved and the dropped count is returned.
func Dedupe(results []BatchResult, keys []string) ([]BatchResult, int) {
	if len(keys) == 0 {
		return results, 0
	}

	seen := make(map[string]struct{}, len(results))
	out := make([]BatchResult, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
			continue
		}
		k := dedupeKey(r.Output, keys)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out, len(results) - len(out)
}

func dedupeKey(rec Record, keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		v, _ := pathutil.Resolve(rec, k)
		parts[i] = canonical(v)
	}
	b, _ := json.Marshal(parts)
	return string(b)
}
