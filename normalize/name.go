package normalize

import (
	"fmt"
	"slices"

	errs "github.com/vortex-fintech/fieldnorm/foundation/errors"
	"github.com/vortex-fintech/fieldnorm/foundation/nameutil"
	"github.com/vortex-fintech/fieldnorm/foundation/pathutil"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

// Logical name fields.
const (
	NameFirst = "first"
	NameLast  = "last"
	NameFull  = "full_name"
)

var nameLogical = []string{NameFirst, NameLast, NameFull}

var defaultNameFields = map[string]string{
	NameFirst: "first_name",
	NameLast:  "last_name",
	NameFull:  "full_name",
}

// NameProcessor cleans first, last and full name and reconciles them.
type NameProcessor struct {
	base
	cfg     NameConfig
	inputs  map[string]string
	outputs map[string]string
	policy  nameutil.DerivePolicy
}

func NewName(cfg NameConfig, opts ...Option) (*NameProcessor, error) {
	if err := checkConfig(DomainName, cfg); err != nil {
		return nil, wrapConfigErr(DomainName, err)
	}
	for k := range cfg.FieldMap {
		if !slices.Contains(nameLogical, k) {
			return nil, wrapConfigErr(DomainName, errs.InvalidConfig(DomainName, "FIELD_MAP", fmt.Sprintf("unknown_field:%s", k)))
		}
	}

	return &NameProcessor{
		base:    newBase(DomainName, cfg.Common, opts),
		cfg:     cfg,
		inputs:  withDefaults(cfg.FieldMap, defaultNameFields),
		outputs: withDefaults(cfg.OutputFields, defaultNameFields),
		policy: nameutil.DerivePolicy{
			PreferSplit: cfg.PreferSplitFields,
			DeriveFull:  cfg.DeriveFullName,
			SplitFull:   cfg.SplitFullName,
		},
	}, nil
}

func withDefaults(m, defaults map[string]string) map[string]string {
	out := make(map[string]string, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (p *NameProcessor) Applies(rec Record) bool {
	for _, l := range nameLogical {
		if pathutil.Has(rec, p.inputs[l]) {
			return true
		}
	}
	return false
}

func (p *NameProcessor) Process(rec Record) (Record, error) {
	res, err := p.Normalize(rec)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

func (p *NameProcessor) Normalize(rec Record) (Result, error) {
	return p.run(rec, p.apply)
}

func (p *NameProcessor) apply(rec Record, w *warnset.Set) []fieldOut {
	before := make(map[string]any, len(nameLogical))
	cleaned := make(map[string]string, len(nameLogical))
	// passthrough keeps non-string values that were not coerced.
	passthrough := make(map[string]any)

	var absent []string

	for _, l := range nameLogical {
		raw, found := pathutil.Resolve(rec, p.inputs[l])
		if !found {
			absent = append(absent, l)
			continue
		}
		before[l] = raw
		v := p.CleanValue(raw, w)
		switch x := v.(type) {
		case nil:
		case string:
			cleaned[l] = x
		default:
			passthrough[l] = x
		}
	}

	d := nameutil.Derive(nameutil.Parts{
		First: cleaned[NameFirst],
		Last:  cleaned[NameLast],
		Full:  cleaned[NameFull],
	}, p.policy)

	if d.BuiltFull {
		w.Add(warnset.BuiltFullName)
	}
	if d.UsedSplit {
		w.Add(warnset.UsedFullNameSplit)
	}
	if d.MissingLast {
		w.Add(warnset.MissingLast)
	}

	after := map[string]string{NameFirst: d.First, NameLast: d.Last, NameFull: d.Full}

	// An absent field is only reported when derivation left it empty.
	// MISSING_LAST already covers an unfilled last name.
	for _, l := range absent {
		if after[l] == "" && !(l == NameLast && d.MissingLast) {
			w.Add(warnset.FieldMissing)
		}
	}
	if d.MissingName && len(passthrough) == 0 {
		w.Add(warnset.MissingName)
	}

	out := make([]fieldOut, 0, len(nameLogical))
	for _, l := range nameLogical {
		f := fieldOut{key: p.outputs[l], before: before[l]}
		switch {
		case after[l] != "":
			f.after = after[l]
		case passthrough[l] != nil:
			f.after = passthrough[l]
		}
		out = append(out, f)
	}
	return out
}

// CleanValue cleans one name value: edge punctuation, inner whitespace and,
// when enabled, safe title-case. Empty results become nil.
func (p *NameProcessor) CleanValue(raw any, w *warnset.Set) any {
	if raw == nil {
		return nil
	}
	s, ok := p.text(raw, w)
	if !ok {
		return raw
	}

	out, stripped := nameutil.CleanValue(s, p.cfg.ApplySafeTitlecase)
	if stripped {
		w.Add(warnset.StrippedEdgePunct)
	}
	if out == "" {
		return nil
	}
	return out
}
