package normalize

import (
	"strings"

	"github.com/vortex-fintech/fieldnorm/foundation/contactutil"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

var defaultWebsiteFields = map[string]string{"website": "website"}

// WebsiteProcessor reduces website values to a lowercase host plus path.
type WebsiteProcessor struct {
	base
	cfg    WebsiteConfig
	detect detectFunc
}

func NewWebsite(cfg WebsiteConfig, opts ...Option) (*WebsiteProcessor, error) {
	if err := checkConfig(DomainWebsite, cfg); err != nil {
		return nil, wrapConfigErr(DomainWebsite, err)
	}
	return &WebsiteProcessor{
		base:   newBase(DomainWebsite, cfg.Common, opts),
		cfg:    cfg,
		detect: keywordDetector("website", "url"),
	}, nil
}

func (p *WebsiteProcessor) refs(rec Record) []fieldRef {
	return p.fieldRefs(rec, defaultWebsiteFields, p.detect)
}

func (p *WebsiteProcessor) Applies(rec Record) bool {
	return anyResolves(rec, p.refs(rec))
}

func (p *WebsiteProcessor) Process(rec Record) (Record, error) {
	res, err := p.Normalize(rec)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

func (p *WebsiteProcessor) Normalize(rec Record) (Result, error) {
	return p.run(rec, func(rec Record, w *warnset.Set) []fieldOut {
		return mapRefs(rec, p.refs(rec), w, func(_ string, raw any) any {
			return p.NormalizeValue(raw, w)
		})
	})
}

// NormalizeValue cleans one website. Values that do not parse as an http(s)
// address with a dotted host become nil with INVALID_URL.
func (p *WebsiteProcessor) NormalizeValue(raw any, w *warnset.Set) any {
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

	out, ok := contactutil.CanonicalWebsite(s, p.cfg.EnsureWWW)
	if !ok {
		w.Add(warnset.InvalidURL)
		return nil
	}
	return out
}
