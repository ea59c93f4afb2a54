package normalize

import (
	"github.com/vortex-fintech/fieldnorm/foundation/textutil"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

// WhitespaceProcessor canonicalizes spacing, line endings and invisible characters.
type WhitespaceProcessor struct {
	base
	cfg    WhitespaceConfig
	policy textutil.WhitespacePolicy
}

func NewWhitespace(cfg WhitespaceConfig, opts ...Option) (*WhitespaceProcessor, error) {
	if err := checkConfig(DomainWhitespace, cfg); err != nil {
		return nil, wrapConfigErr(DomainWhitespace, err)
	}
	return &WhitespaceProcessor{
		base: newBase(DomainWhitespace, cfg.Common, opts),
		cfg:  cfg,
		policy: textutil.WhitespacePolicy{
			FoldNFKC:           cfg.UnicodeNFKC,
			RemoveZeroWidth:    cfg.RemoveZeroWidth,
			NormalizeNewlines:  cfg.NormalizeNewlines == NewlinesLF,
			TrimEdges:          cfg.TrimEdges,
			CollapseSpaces:     cfg.CollapseSpaces,
			CollapseBlankLines: cfg.CollapseBlankLines,
		},
	}, nil
}

func isStringValue(_ string, v any) bool {
	_, ok := v.(string)
	return ok
}

func (p *WhitespaceProcessor) refs(rec Record) []fieldRef {
	return p.fieldRefs(rec, nil, isStringValue)
}

// Applies reports whether rec holds at least one field this processor would read.
func (p *WhitespaceProcessor) Applies(rec Record) bool {
	return anyResolves(rec, p.refs(rec))
}

func (p *WhitespaceProcessor) Process(rec Record) (Record, error) {
	res, err := p.Normalize(rec)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

func (p *WhitespaceProcessor) Normalize(rec Record) (Result, error) {
	return p.run(rec, func(rec Record, w *warnset.Set) []fieldOut {
		return mapRefs(rec, p.refs(rec), w, func(_ string, raw any) any {
			return p.Clean(raw, w)
		})
	})
}

// Clean normalizes one value. nil stays nil; a non-string that is not coerced
// is returned unchanged.
func (p *WhitespaceProcessor) Clean(raw any, w *warnset.Set) any {
	if raw == nil {
		return nil
	}
	s, ok := p.text(raw, w)
	if !ok {
		return raw
	}

	s = textutil.Clean(s, p.policy)
	if s == "" {
		if p.cfg.EmptyToNull {
			w.Add(warnset.CleanedToEmpty)
		}
		return nil
	}
	return s
}
