package normalize

import (
	"strings"

	"github.com/vortex-fintech/fieldnorm/foundation/contactutil"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

var defaultEmailFields = map[string]string{"email": "email"}

// EmailProcessor extracts, lowercases and validates e-mail addresses.
type EmailProcessor struct {
	base
	cfg    EmailConfig
	detect detectFunc
}

func NewEmail(cfg EmailConfig, opts ...Option) (*EmailProcessor, error) {
	if err := checkConfig(DomainEmail, cfg); err != nil {
		return nil, wrapConfigErr(DomainEmail, err)
	}
	return &EmailProcessor{
		base:   newBase(DomainEmail, cfg.Common, opts),
		cfg:    cfg,
		detect: keywordDetector("email"),
	}, nil
}

func (p *EmailProcessor) refs(rec Record) []fieldRef {
	return p.fieldRefs(rec, defaultEmailFields, p.detect)
}

func (p *EmailProcessor) Applies(rec Record) bool {
	return anyResolves(rec, p.refs(rec))
}

func (p *EmailProcessor) Process(rec Record) (Record, error) {
	res, err := p.Normalize(rec)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

func (p *EmailProcessor) Normalize(rec Record) (Result, error) {
	return p.run(rec, func(rec Record, w *warnset.Set) []fieldOut {
		return mapRefs(rec, p.refs(rec), w, func(_ string, raw any) any {
			return p.NormalizeValue(raw, w)
		})
	})
}

// NormalizeValue normalizes one address. Extraction runs before lowercasing.
func (p *EmailProcessor) NormalizeValue(raw any, w *warnset.Set) any {
	if raw == nil {
		return nil
	}
	s, ok := p.text(raw, w)
	if !ok {
		return raw
	}

	s = strings.TrimSpace(s)
	if p.cfg.StripMailto {
		s = strings.TrimSpace(contactutil.StripMailto(s))
	}
	if p.cfg.ExtractEmail && s != "" {
		if m, found := contactutil.ExtractEmail(s); found && m != s {
			w.Add(warnset.EmailExtracted)
			s = m
		}
	}
	if p.cfg.Lowercase {
		s = strings.ToLower(s)
	}

	if s == "" {
		if p.cfg.EmptyToNull {
			w.Add(warnset.CleanedToEmpty)
		}
		return nil
	}

	if p.cfg.ValidateFormat && !contactutil.IsEmailShape(s) {
		w.Add(warnset.InvalidEmail)
		return nil
	}
	if p.cfg.ProviderCanonical && contactutil.IsEmailShape(s) {
		s = contactutil.CanonicalEmail(s)
	}
	return s
}
