// Package config loads fieldnorm settings from a TOML file and FIELDNORM_*
// environment variables.
//
// Layering, lowest to highest: built-in defaults, the [common] table, the
// per-domain table, FIELDNORM_COMMON_<KEY>, FIELDNORM_<DOMAIN>_<KEY>.
// Field maps belong to one domain and are rejected in the common layer.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	errs "github.com/vortex-fintech/fieldnorm/foundation/errors"
	"github.com/vortex-fintech/fieldnorm/foundation/validator"
	"github.com/vortex-fintech/fieldnorm/normalize"
)

const (
	EnvPrefix = "FIELDNORM_"

	sectionCommon = "common"
)

// domainOnlyKeys name input and output fields of one domain and cannot be
// shared through [common].
var domainOnlyKeys = []string{"FIELD_MAP", "OUTPUT_FIELDS", "FIELD_COUNTRIES", "FIELD_NETWORKS"}

// Run holds settings of the command line runner.
type Run struct {
	Steps           []string `toml:"steps" json:"steps" validate:"dive,oneof=whitespace email phone name website social zip state"`
	Workers         int      `toml:"workers" json:"workers" validate:"gte=0,lte=1024"`
	Format          string   `toml:"format" json:"format" validate:"oneof=json jsonl"`
	Env             string   `toml:"env" json:"env"`
	MetricsTextfile string   `toml:"metrics_textfile,omitempty" json:"metrics_textfile,omitempty"`
	// DedupeKeys are dotted paths compared after normalization. Later records
	// repeating an earlier key tuple are dropped. Empty disables it.
	DedupeKeys []string `toml:"dedupe_keys,omitempty" json:"dedupe_keys,omitempty" validate:"dive,fieldpath"`
}

type Config struct {
	Run        Run                        `toml:"run" json:"run"`
	Whitespace normalize.WhitespaceConfig `toml:"whitespace" json:"whitespace"`
	Email      normalize.EmailConfig      `toml:"email" json:"email"`
	Phone      normalize.PhoneConfig      `toml:"phone" json:"phone"`
	Name       normalize.NameConfig       `toml:"name" json:"name"`
	Website    normalize.WebsiteConfig    `toml:"website" json:"website"`
	Social     normalize.SocialConfig     `toml:"social" json:"social"`
	ZIP        normalize.ZIPConfig        `toml:"zip" json:"zip"`
	State      normalize.StateConfig      `toml:"state" json:"state"`
}

// layout mirrors the file. Domain tables stay raw so [common] can be applied first.
type layout struct {
	Run        map[string]any `toml:"run"`
	Common     map[string]any `toml:"common"`
	Whitespace map[string]any `toml:"whitespace"`
	Email      map[string]any `toml:"email"`
	Phone      map[string]any `toml:"phone"`
	Name       map[string]any `toml:"name"`
	Website    map[string]any `toml:"website"`
	Social     map[string]any `toml:"social"`
	ZIP        map[string]any `toml:"zip"`
	State      map[string]any `toml:"state"`
}

func Default() Config {
	return Config{
		Run: Run{
			Steps:   []string{normalize.DomainWhitespace, normalize.DomainEmail, normalize.DomainPhone, normalize.DomainName},
			Workers: 1,
			Format:  "json",
			Env:     "production",
		},
		Whitespace: normalize.DefaultWhitespaceConfig(),
		Email:      normalize.DefaultEmailConfig(),
		Phone:      normalize.DefaultPhoneConfig(),
		Name:       normalize.DefaultNameConfig(),
		Website:    normalize.DefaultWebsiteConfig(),
		Social:     normalize.DefaultSocialConfig(),
		ZIP:        normalize.DefaultZIPConfig(),
		State:      normalize.DefaultStateConfig(),
	}
}

// Load reads path (skipped when empty) and applies the process environment.
func Load(path string) (Config, error) {
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errs.ConfigLoad(path, err)
		}
		data = b
	}
	cfg, err := Parse(data, os.Environ())
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", displayPath(path), err)
	}
	return cfg, nil
}

func displayPath(p string) string {
	if p == "" {
		return "defaults"
	}
	return p
}

// Parse builds a Config from TOML data and KEY=VALUE environment entries.
// Unknown keys are rejected. The result is validated.
func Parse(data []byte, environ []string) (Config, error) {
	cfg := Default()

	var l layout
	if len(bytes.TrimSpace(data)) > 0 {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&l); err != nil {
			return Config{}, errs.ConfigLoad("toml", err)
		}
	}
	if _, ok := l.Run["steps"]; ok {
		cfg.Run.Steps = nil
	}
	if err := apply(l.Run, &cfg.Run); err != nil {
		return Config{}, errs.ConfigLoad("run", err)
	}

	env := envSections(environ)
	if err := checkCommon(l.Common, env[sectionCommon]); err != nil {
		return Config{}, err
	}
	targets := []struct {
		name    string
		section map[string]any
		dst     any
	}{
		{normalize.DomainWhitespace, l.Whitespace, &cfg.Whitespace},
		{normalize.DomainEmail, l.Email, &cfg.Email},
		{normalize.DomainPhone, l.Phone, &cfg.Phone},
		{normalize.DomainName, l.Name, &cfg.Name},
		{normalize.DomainWebsite, l.Website, &cfg.Website},
		{normalize.DomainSocial, l.Social, &cfg.Social},
		{normalize.DomainZIP, l.ZIP, &cfg.ZIP},
		{normalize.DomainState, l.State, &cfg.State},
	}
	for _, t := range targets {
		layers := []map[string]any{l.Common, t.section, env[sectionCommon], env[t.name]}
		for _, layer := range layers {
			if err := apply(layer, t.dst); err != nil {
				return Config{}, errs.ConfigLoad(t.name, err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkCommon(layers ...map[string]any) error {
	for _, layer := range layers {
		for _, key := range domainOnlyKeys {
			if _, ok := layer[key]; ok {
				return errs.InvalidConfig(sectionCommon, key, "domain_only")
			}
		}
	}
	return nil
}

// apply decodes one raw table onto dst, strictly.
func apply(section map[string]any, dst any) error {
	if len(section) == 0 {
		return nil
	}
	b, err := toml.Marshal(section)
	if err != nil {
		return fmt.Errorf("encode section: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return fmt.Errorf("unknown key: %s", strings.TrimSpace(sme.String()))
		}
		return err
	}
	return nil
}

// Validate checks every section with the struct tags of its type.
func (c Config) Validate() error {
	if err := validator.Check(c); err != nil {
		return errs.ToErrorResponse(err).WithReason(errs.ReasonInvalidConfig)
	}
	return nil
}

// Encode writes c as TOML.
func Encode(w io.Writer, c Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
