package normalize

import (
	"strings"

	"github.com/vortex-fintech/fieldnorm/foundation/addressutil"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

var defaultZIPFields = map[string]string{"zip": "zip"}

// ZIPProcessor reduces US ZIP codes to five digits, or ZIP+4 when configured.
type ZIPProcessor struct {
	base
	cfg    ZIPConfig
	detect detectFunc
}

func NewZIP(cfg ZIPConfig, opts ...Option) (*ZIPProcessor, error) {
	if err := checkConfig(DomainZIP, cfg); err != nil {
		return nil, wrapConfigErr(DomainZIP, err)
	}
	return &ZIPProcessor{
		base:   newBase(DomainZIP, cfg.Common, opts),
		cfg:    cfg,
		detect: keywordDetector("zip", "postal"),
	}, nil
}

func (p *ZIPProcessor) refs(rec Record) []fieldRef {
	return p.fieldRefs(rec, defaultZIPFields, p.detect)
}

func (p *ZIPProcessor) Applies(rec Record) bool {
	return anyResolves(rec, p.refs(rec))
}

func (p *ZIPProcessor) Process(rec Record) (Record, error) {
	res, err := p.Normalize(rec)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

func (p *ZIPProcessor) Normalize(rec Record) (Result, error) {
	return p.run(rec, func(rec Record, w *warnset.Set) []fieldOut {
		return mapRefs(rec, p.refs(rec), w, func(_ string, raw any) any {
			return p.NormalizeValue(raw, w)
		})
	})
}

// NormalizeValue cleans one ZIP. A number that lost its leading zeros is
// padded back when PAD_NUMERIC is set.
func (p *ZIPProcessor) NormalizeValue(raw any, w *warnset.Set) any {
	if raw == nil {
		return nil
	}
	s, ok := p.text(raw, w)
	if !ok {
		return raw
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return cleanedEmpty(p.cfg.EmptyToNull, w)
	}

	if _, isString := raw.(string); !isString && p.cfg.PadNumeric {
		if padded, ok := addressutil.PadZIP(s); ok {
			w.Add(warnset.ZIPPadded)
			s = padded
		}
	}

	zip, ok := addressutil.ZIP(s, p.cfg.KeepPlus4)
	if !ok {
		w.Add(warnset.InvalidZIP)
		return nil
	}
	return zip
}
