package config

import (
	"fmt"
	"strings"

	errs "github.com/vortex-fintech/fieldnorm/foundation/errors"
	"github.com/vortex-fintech/fieldnorm/normalize"
)

// ParseSteps splits a comma separated step list, dropping blanks.
func ParseSteps(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Processors builds one processor per step, in order.
func (c Config) Processors(steps []string, opts ...normalize.Option) ([]normalize.Processor, error) {
	out := make([]normalize.Processor, 0, len(steps))
	for _, step := range steps {
		var (
			p   normalize.Processor
			err error
		)
		switch step {
		case normalize.DomainWhitespace:
			p, err = normalize.NewWhitespace(c.Whitespace, opts...)
		case normalize.DomainEmail:
			p, err = normalize.NewEmail(c.Email, opts...)
		case normalize.DomainPhone:
			p, err = normalize.NewPhone(c.Phone, opts...)
		case normalize.DomainName:
			p, err = normalize.NewName(c.Name, opts...)
		case normalize.DomainWebsite:
			p, err = normalize.NewWebsite(c.Website, opts...)
		case normalize.DomainSocial:
			p, err = normalize.NewSocial(c.Social, opts...)
		case normalize.DomainZIP:
			p, err = normalize.NewZIP(c.ZIP, opts...)
		case normalize.DomainState:
			p, err = normalize.NewState(c.State, opts...)
		default:
			return nil, errs.UnknownStep(step)
		}
		if err != nil {
			return nil, fmt.Errorf("build %s step: %w", step, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Pipeline builds the processors for steps and chains them.
func (c Config) Pipeline(steps []string, opts ...normalize.Option) (*normalize.Pipeline, error) {
	procs, err := c.Processors(steps, opts...)
	if err != nil {
		return nil, err
	}
	return normalize.NewPipeline(procs, opts...)
}
