package normalize

import (
	"strings"

	"github.com/vortex-fintech/fieldnorm/foundation/contactutil"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

var defaultSocialFields = map[string]string{
	"facebook":  "facebook",
	"instagram": "instagram",
	"linkedin":  "linkedin",
}

// SocialProcessor normalizes LinkedIn, Facebook and Instagram profile links.
// The network of a field comes from FIELD_NETWORKS, else from its key.
type SocialProcessor struct {
	base
	cfg      SocialConfig
	networks map[string]contactutil.Network
	detect   detectFunc
}

func NewSocial(cfg SocialConfig, opts ...Option) (*SocialProcessor, error) {
	if err := checkConfig(DomainSocial, cfg); err != nil {
		return nil, wrapConfigErr(DomainSocial, err)
	}
	networks := make(map[string]contactutil.Network, len(cfg.FieldNetworks))
	for key, name := range cfg.FieldNetworks {
		n, _ := contactutil.ParseNetwork(name)
		networks[key] = n
	}
	return &SocialProcessor{
		base:     newBase(DomainSocial, cfg.Common, opts),
		cfg:      cfg,
		networks: networks,
		detect: func(key string, v any) bool {
			_, isString := v.(string)
			_, known := contactutil.NetworkForKey(key)
			return isString && known
		},
	}, nil
}

func (p *SocialProcessor) refs(rec Record) []fieldRef {
	return p.fieldRefs(rec, defaultSocialFields, p.detect)
}

func (p *SocialProcessor) Applies(rec Record) bool {
	return anyResolves(rec, p.refs(rec))
}

func (p *SocialProcessor) Process(rec Record) (Record, error) {
	res, err := p.Normalize(rec)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

func (p *SocialProcessor) Normalize(rec Record) (Result, error) {
	return p.run(rec, func(rec Record, w *warnset.Set) []fieldOut {
		return mapRefs(rec, p.refs(rec), w, func(key string, raw any) any {
			n, ok := p.Network(key)
			if !ok {
				w.Add(warnset.SocialNetworkUnknown)
				return raw
			}
			return p.NormalizeValue(raw, n, w)
		})
	})
}

// Network resolves the network for an output key.
func (p *SocialProcessor) Network(key string) (contactutil.Network, bool) {
	if n, ok := p.networks[key]; ok {
		return n, true
	}
	return contactutil.NetworkForKey(key)
}

// NormalizeValue cleans one profile link for network n. Links that are not
// profiles or pages of n become nil with INVALID_SOCIAL_URL.
func (p *SocialProcessor) NormalizeValue(raw any, n contactutil.Network, w *warnset.Set) any {
	if raw == nil {
		return nil
	}
	s, ok := p.text(raw, w)
	if !ok {
		return raw
	}
	if strings.TrimSpace(s) == "" {
		return cleanedEmpty(p.cfg.EmptyToNull, w)
	}

	out, ok := contactutil.CanonicalProfile(n, s)
	if !ok {
		w.Add(warnset.InvalidSocialURL)
		return nil
	}
	return out
}
