package normalize

import (
	"encoding/json"
	"fmt"
)

// canonical renders v for before/after comparison. Scalars compare by their
// coerced text, so 5 and "5" are equal while nil and "" are not.
func canonical(v any) string {
	switch v.(type) {
	case string, json.Number, bool, float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		s, _ := coerceString(v)
		return "s:" + s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("g:%#v", v)
	}
	return "j:" + string(b)
}

func sameCanonical(a, b any) bool {
	return canonical(a) == canonical(b)
}

// changedKeys lists output keys whose value differs from the input, in field order.
func changedKeys(fields []fieldOut) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !sameCanonical(f.before, f.after) {
			out = append(out, f.key)
		}
	}
	return out
}
