package validator

var tagMap = map[string]string{
	"required":  "required",
	"omitempty": "optional",
	"oneof":     "unsupported_value",
	"iso2":      "invalid_country",
	"fieldpath": "invalid_path",
	"gte":       "too_small",
	"lte":       "too_large",
	"min":       "too_short",
	"max":       "too_long",
	"dive":      "invalid",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}

// TagReasons returns a copy of the tag to violation reason table.
func TagReasons() map[string]string {
	out := make(map[string]string, len(tagMap))
	for k, v := range tagMap {
		out[k] = v
	}
	return out
}
