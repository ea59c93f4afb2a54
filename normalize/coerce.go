package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// coerceString renders scalar JSON-ish values as text. Floats use the shortest
// plain decimal form so that 4155552671 stays "4155552671".
func coerceString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case int:
		return strconv.Itoa(x), true
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", x), true
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x), true
	case bool:
		return strconv.FormatBool(x), true
	case fmt.Stringer:
		return x.String(), true
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	return string(b), true
}
