package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/vortex-fintech/fieldnorm/normalize"
)

var envSectionNames = []string{
	sectionCommon,
	normalize.DomainWhitespace,
	normalize.DomainEmail,
	normalize.DomainPhone,
	normalize.DomainName,
	normalize.DomainWebsite,
	normalize.DomainSocial,
	normalize.DomainZIP,
	normalize.DomainState,
}

// envSections groups FIELDNORM_<SECTION>_<KEY>=value entries by section.
// Entries with an unknown section are ignored.
func envSections(environ []string) map[string]map[string]any {
	out := map[string]map[string]any{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		rest := strings.TrimPrefix(name, EnvPrefix)
		for _, section := range envSectionNames {
			prefix := strings.ToUpper(section) + "_"
			if !strings.HasPrefix(rest, prefix) || len(rest) == len(prefix) {
				continue
			}
			if out[section] == nil {
				out[section] = map[string]any{}
			}
			out[section][strings.TrimPrefix(rest, prefix)] = envValue(value)
			break
		}
	}
	return out
}

// envValue reads value as a TOML literal (bool, number, inline table, array)
// and falls back to the raw string.
func envValue(value string) any {
	var doc struct {
		V any `toml:"v"`
	}
	if err := toml.Unmarshal([]byte("v = "+value), &doc); err == nil && doc.V != nil {
		return doc.V
	}
	return value
}
