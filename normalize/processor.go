// Package normalize cleans whitespace, email, phone, name, website, social
// profile, ZIP and state fields of decoded JSON-like records.
//
// Every processor is built once from an immutable config and is safe for
// concurrent use. Process never mutates its input; it returns a new record.
package normalize

import (
	"fmt"

	errs "github.com/vortex-fintech/fieldnorm/foundation/errors"
	"github.com/vortex-fintech/fieldnorm/foundation/logger"
	"github.com/vortex-fintech/fieldnorm/foundation/piiutil"
	"github.com/vortex-fintech/fieldnorm/foundation/timeutil"
	"github.com/vortex-fintech/fieldnorm/foundation/validator"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
	"github.com/vortex-fintech/fieldnorm/runtime/metrics"
)

const (
	DomainWhitespace = "whitespace"
	DomainEmail      = "email"
	DomainPhone      = "phone"
	DomainName       = "name"
	DomainWebsite    = "website"
	DomainSocial     = "social"
	DomainZIP        = "zip"
	DomainState      = "state"
)

// Record is one decoded input item.
type Record = map[string]any

// Result is the full outcome of normalizing one record. Warnings and Changed
// are always populated, whether or not they are emitted into Output.
type Result struct {
	Output   Record
	Warnings []string
	Changed  []string
}

// Processor normalizes one record.
type Processor interface {
	Domain() string
	Process(rec Record) (Record, error)
}

// fieldOut is one normalized output key with the value it had before.
type fieldOut struct {
	key    string
	before any
	after  any
}

type base struct {
	domain  string
	common  Common
	log     logger.LoggerInterface
	metrics metrics.Recorder
	clock   timeutil.Clock
}

func newBase(domain string, common Common, opts []Option) base {
	o := buildOptions(opts)
	return base{
		domain:  domain,
		common:  common,
		log:     o.log.With("domain", domain),
		metrics: o.metrics,
		clock:   o.clock,
	}
}

func (b *base) Domain() string { return b.domain }

// run drives one record through apply and assembles the result.
func (b *base) run(rec Record, apply func(Record, *warnset.Set) []fieldOut) (Result, error) {
	start := b.clock.Now()
	if rec == nil {
		b.metrics.ObserveRecord(b.domain, metrics.ResultFailed, b.clock.Since(start))
		return Result{}, errs.InvalidRecord(b.domain)
	}

	w := warnset.New(b.common.WarningMode)
	fields := apply(rec, w)
	changed := changedKeys(fields)
	out := buildOutput(rec, fields, b.common, b.domain, w, changed)

	for _, f := range fields {
		if !sameCanonical(f.before, f.after) {
			b.log.Debugw("field normalized",
				"field", f.key,
				"before", piiutil.ForLog(b.domain, f.before),
				"after", piiutil.ForLog(b.domain, f.after),
			)
		}
	}

	result := metrics.ResultClean
	if w.Len() > 0 {
		result = metrics.ResultWarned
		b.log.Debugw("record warnings", "warnings", w.Strings())
	}
	b.metrics.ObserveRecord(b.domain, result, b.clock.Since(start))
	b.metrics.AddWarnings(b.domain, w.Strings())
	b.metrics.AddChangedFields(b.domain, len(changed))

	return Result{Output: out, Warnings: w.Strings(), Changed: changed}, nil
}

// text returns raw as a string. Non-strings are coerced when configured,
// otherwise VALUE_NOT_STRING is recorded and ok is false.
func (b *base) text(raw any, w *warnset.Set) (string, bool) {
	if s, ok := raw.(string); ok {
		return s, true
	}
	if b.common.CoerceNonString {
		if s, ok := coerceString(raw); ok {
			return s, true
		}
	}
	w.Add(warnset.ValueNotString)
	return "", false
}

// cleanedEmpty is the result for a value that cleaned to nothing.
func cleanedEmpty(emptyToNull bool, w *warnset.Set) any {
	if emptyToNull {
		w.Add(warnset.CleanedToEmpty)
	}
	return nil
}

func checkConfig(domain string, cfg any) error {
	if err := validator.Check(cfg); err != nil {
		return errs.ToErrorResponse(err).WithReason(errs.ReasonInvalidConfig).WithDomain(domain)
	}
	return nil
}

func wrapConfigErr(domain string, err error) error {
	return fmt.Errorf("%s config: %w", domain, err)
}
