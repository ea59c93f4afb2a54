package normalize

import (
	"github.com/vortex-fintech/fieldnorm/foundation/contactutil"
	"github.com/vortex-fintech/fieldnorm/foundation/geo"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

var defaultPhoneFields = map[string]string{"phone": "phone"}

// PhoneProcessor converts phone numbers into an E.164-like "+digits" form.
type PhoneProcessor struct {
	base
	cfg    PhoneConfig
	policy contactutil.PhonePolicy
	detect detectFunc
}

func NewPhone(cfg PhoneConfig, opts ...Option) (*PhoneProcessor, error) {
	if err := checkConfig(DomainPhone, cfg); err != nil {
		return nil, wrapConfigErr(DomainPhone, err)
	}
	return &PhoneProcessor{
		base: newBase(DomainPhone, cfg.Common, opts),
		cfg:  cfg,
		policy: contactutil.PhonePolicy{
			SplitMultiple:  cfg.AllowMultipleSplit,
			StripExtension: cfg.StripExtension,
			ValidateLength: cfg.ValidateLength,
			InferUSLocal:   cfg.InferUSLocal,
		},
		detect: keywordDetector("phone", "cell", "mobile"),
	}, nil
}

func (p *PhoneProcessor) refs(rec Record) []fieldRef {
	return p.fieldRefs(rec, defaultPhoneFields, p.detect)
}

func (p *PhoneProcessor) Applies(rec Record) bool {
	return anyResolves(rec, p.refs(rec))
}

func (p *PhoneProcessor) Process(rec Record) (Record, error) {
	return p.ProcessWithCountry(rec, "")
}

// ProcessWithCountry is Process with an explicit country that overrides the
// configured per-field and default countries.
func (p *PhoneProcessor) ProcessWithCountry(rec Record, country string) (Record, error) {
	res, err := p.Normalize(rec, country)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

func (p *PhoneProcessor) Normalize(rec Record, country string) (Result, error) {
	return p.run(rec, func(rec Record, w *warnset.Set) []fieldOut {
		return mapRefs(rec, p.refs(rec), w, func(key string, raw any) any {
			return p.NormalizeValue(raw, p.Country(key, country), w)
		})
	})
}

// Country resolves the effective country for an output key: override, then
// FIELD_COUNTRIES, then DEFAULT_COUNTRY, then US.
func (p *PhoneProcessor) Country(key, override string) string {
	return geo.ResolveCountry(override, p.cfg.FieldCountries[key], p.cfg.DefaultCountry)
}

// NormalizeValue normalizes one number for the given ISO2 country.
func (p *PhoneProcessor) NormalizeValue(raw any, country string, w *warnset.Set) any {
	if raw == nil {
		return nil
	}
	s, ok := p.text(raw, w)
	if !ok {
		return raw
	}

	res := contactutil.NormalizePhone(s, geo.ResolveCountry(country), p.policy)
	if res.MultipleFound {
		w.Add(warnset.MultiplePhonesFound)
	}
	if res.HadExtension {
		w.Add(warnset.PhoneHasExtension)
	}

	switch res.Outcome {
	case contactutil.PhoneOK:
		return res.E164
	case contactutil.PhoneNeedsCountry:
		w.Add(warnset.PhoneNeedsCountry)
	default:
		w.Add(warnset.InvalidPhone)
	}
	return nil
}
