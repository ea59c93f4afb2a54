package normalize

import (
	"strings"

	"github.com/vortex-fintech/fieldnorm/foundation/addressutil"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

var defaultStateFields = map[string]string{"state": "state"}

// StateProcessor maps US state names and abbreviations to one spelling.
type StateProcessor struct {
	base
	cfg    StateConfig
	detect detectFunc
}

func NewState(cfg StateConfig, opts ...Option) (*StateProcessor, error) {
	if err := checkConfig(DomainState, cfg); err != nil {
		return nil, wrapConfigErr(DomainState, err)
	}
	return &StateProcessor{
		base:   newBase(DomainState, cfg.Common, opts),
		cfg:    cfg,
		detect: keywordDetector("state", "province", "region"),
	}, nil
}

func (p *StateProcessor) refs(rec Record) []fieldRef {
	return p.fieldRefs(rec, defaultStateFields, p.detect)
}

func (p *StateProcessor) Applies(rec Record) bool {
	return anyResolves(rec, p.refs(rec))
}

func (p *StateProcessor) Process(rec Record) (Record, error) {
	res, err := p.Normalize(rec)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

func (p *StateProcessor) Normalize(rec Record) (Result, error) {
	return p.run(rec, func(rec Record, w *warnset.Set) []fieldOut {
		return mapRefs(rec, p.refs(rec), w, func(_ string, raw any) any {
			return p.NormalizeValue(raw, w)
		})
	})
}

// NormalizeValue writes one state as "NY" or "New York" per STATE_FORMAT.
// Anything that is not a US state or DC becomes nil with INVALID_STATE.
func (p *StateProcessor) NormalizeValue(raw any, w *warnset.Set) any {
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

	st, ok := addressutil.LookupState(s)
	if !ok {
		w.Add(warnset.InvalidState)
		return nil
	}
	if p.cfg.Format == StateFull {
		return st.Name
	}
	return st.Abbr
}
