package normalize

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/vortex-fintech/fieldnorm/foundation/errors"
	"github.com/vortex-fintech/fieldnorm/foundation/logger"
	"github.com/vortex-fintech/fieldnorm/runtime/metrics"
)

const DomainPipeline = "pipeline"

// applier is implemented by processors that can tell up front whether a
// record holds any of their fields.
type applier interface {
	Applies(rec Record) bool
}

// Pipeline runs processors in order, feeding each output into the next step.
// Steps should use OUTPUT_MODE=merge, otherwise later steps only see the
// previous step's keys.
type Pipeline struct {
	steps   []Processor
	log     logger.LoggerInterface
	metrics metrics.Recorder
}

func NewPipeline(steps []Processor, opts ...Option) (*Pipeline, error) {
	if len(steps) == 0 {
		return nil, errs.EmptyPipeline(DomainPipeline)
	}
	for i, s := range steps {
		if s == nil {
			return nil, errs.NilStep(i)
		}
	}
	o := buildOptions(opts)
	return &Pipeline{
		steps:   append([]Processor(nil), steps...),
		log:     o.log.With("domain", DomainPipeline),
		metrics: o.metrics,
	}, nil
}

func (p *Pipeline) Domain() string { return DomainPipeline }

// Steps returns the step domains in run order, e.g. "whitespace,email".
func (p *Pipeline) Steps() string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Domain()
	}
	return strings.Join(names, ",")
}

// Process runs every step over rec. Steps whose fields are all absent are skipped.
func (p *Pipeline) Process(rec Record) (Record, error) {
	if rec == nil {
		return nil, errs.InvalidRecord(DomainPipeline)
	}

	cur := rec
	for _, s := range p.steps {
		if a, ok := s.(applier); ok && !a.Applies(cur) {
			p.log.Debugw("step skipped", "step", s.Domain())
			p.metrics.ObserveRecord(s.Domain(), metrics.ResultSkipped, time.Duration(0))
			continue
		}
		out, err := s.Process(cur)
		if err != nil {
			return nil, fmt.Errorf("%s step: %w", s.Domain(), err)
		}
		cur = out
	}
	return cur, nil
}
