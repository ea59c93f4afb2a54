package normalize

import "github.com/vortex-fintech/fieldnorm/foundation/warnset"

const (
	warningsSuffix = "_warnings"
	changedSuffix  = "_changed_fields"
)

// WarningsKey is the output key carrying warnings of domain.
func WarningsKey(domain string) string { return domain + warningsSuffix }

// ChangedFieldsKey is the output key carrying changed field keys of domain.
func ChangedFieldsKey(domain string) string { return domain + changedSuffix }

// buildOutput merges normalized fields into a new record. The input is never written.
func buildOutput(rec Record, fields []fieldOut, c Common, domain string, w *warnset.Set, changed []string) Record {
	var out Record
	if c.OutputMode == OutputOnly {
		out = make(Record, len(fields)+2)
	} else {
		out = make(Record, len(rec)+len(fields)+2)
		for k, v := range rec {
			out[k] = v
		}
	}

	for _, f := range fields {
		out[f.key] = f.after
	}

	if c.EmitWarnings {
		out[WarningsKey(domain)] = w.Strings()
	}
	if c.EmitChangedFields {
		out[ChangedFieldsKey(domain)] = append([]string{}, changed...)
	}
	return out
}
