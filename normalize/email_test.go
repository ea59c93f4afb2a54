package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

func newEmail(t *testing.T, mutate func(*EmailConfig)) *EmailProcessor {
	t.Helper()
	cfg := DefaultEmailConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	p, err := NewEmail(cfg)
	require.NoError(t, err)
	return p
}

func TestEmail_NormalizeValue(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*EmailConfig)
		in       any
		want     any
		warnings []string
	}{
		{name: "lowercase", in: "TEST@Example.com", want: "test@example.com"},
		{name: "trimmed", in: "  ann@example.org ", want: "ann@example.org"},
		{name: "invalid", in: "bob@x", want: nil, warnings: []string{"INVALID_EMAIL"}},
		{name: "empty", in: "", want: nil, warnings: []string{"CLEANED_TO_EMPTY"}},
		{name: "display name", in: "John Smith <JOHN@Example.com>", want: "john@example.com",
			warnings: []string{"EMAIL_EXTRACTED"}},
		{name: "sentence", in: "write to ops@corp.io.", want: "ops@corp.io",
			warnings: []string{"EMAIL_EXTRACTED"}},
		{name: "mailto", in: "mailto:Jane@Example.org", want: "jane@example.org"},
		{name: "mailto only", in: "mailto:", want: nil, warnings: []string{"CLEANED_TO_EMPTY"}},
		{name: "extraction off", mutate: func(c *EmailConfig) { c.ExtractEmail = false },
			in: "John <john@example.com>", want: nil, warnings: []string{"INVALID_EMAIL"}},
		{name: "validation off", mutate: func(c *EmailConfig) { c.ValidateFormat = false },
			in: "bob@x", want: "bob@x"},
		{name: "case kept", mutate: func(c *EmailConfig) { c.Lowercase = false },
			in: "Ann@Example.org", want: "Ann@Example.org"},
		{name: "number coerced then invalid", in: 123, want: nil, warnings: []string{"INVALID_EMAIL"}},
		{name: "number kept", mutate: func(c *EmailConfig) { c.CoerceNonString = false },
			in: true, want: true, warnings: []string{"VALUE_NOT_STRING"}},
		{name: "nil", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newEmail(t, tt.mutate)
			w := warnset.New(warnset.ModeDedupe)

			got := p.NormalizeValue(tt.in, w)

			require.Equal(t, tt.want, got)
			requireWarnings(t, tt.warnings, w.Strings())
		})
	}
}

func TestEmail_ProviderCanonical(t *testing.T) {
	p := newEmail(t, func(c *EmailConfig) { c.ProviderCanonical = true })
	w := warnset.New(warnset.ModeDedupe)

	got, ok := p.NormalizeValue("John.Doe+news@Gmail.com", w).(string)
	require.True(t, ok)
	require.NotContains(t, got, "+news")
	require.Equal(t, got, p.NormalizeValue(got, w), "canonical form must be stable")
	require.Empty(t, w.Strings())
}

func TestEmail_Process(t *testing.T) {
	p := newEmail(t, func(c *EmailConfig) {
		c.FieldMap = map[string]string{"email": "contact.email", "alt_email": "contact.alt"}
	})
	in := Record{"contact": map[string]any{"email": "ANN@EXAMPLE.ORG"}}

	res, err := p.Normalize(in)
	require.NoError(t, err)

	require.Equal(t, "ann@example.org", res.Output["email"])
	require.Nil(t, res.Output["alt_email"])
	require.Equal(t, []string{"FIELD_MISSING"}, res.Warnings)
	require.Equal(t, []string{"email"}, res.Changed)
	require.Equal(t, []string{"FIELD_MISSING"}, res.Output["email_warnings"])
	require.Equal(t, []string{"email"}, res.Output["email_changed_fields"])
}

func TestEmail_WarningModeAll(t *testing.T) {
	p := newEmail(t, func(c *EmailConfig) {
		c.WarningMode = warnset.ModeAll
		c.FieldMap = map[string]string{"a": "a", "b": "b"}
	})

	res, err := p.Normalize(Record{"a": "x@y", "b": "z@w"})
	require.NoError(t, err)
	require.Equal(t, []string{"INVALID_EMAIL", "INVALID_EMAIL"}, res.Warnings)

	p = newEmail(t, func(c *EmailConfig) { c.FieldMap = map[string]string{"a": "a", "b": "b"} })
	res, err = p.Normalize(Record{"a": "x@y", "b": "z@w"})
	require.NoError(t, err)
	require.Equal(t, []string{"INVALID_EMAIL"}, res.Warnings)
}

func TestEmail_AutoDetect(t *testing.T) {
	p := newEmail(t, func(c *EmailConfig) { c.AutoDetect = true })

	res, err := p.Normalize(Record{
		"Work_Email":     "A@B.CO",
		"email_warnings": []string{},
		"name":           "Ann",
		"personal_email": 5,
	})
	require.NoError(t, err)
	require.Equal(t, "a@b.co", res.Output["Work_Email"])
	require.Equal(t, []string{"Work_Email"}, res.Changed)
	require.Equal(t, 5, res.Output["personal_email"])
}

func TestEmail_Idempotent(t *testing.T) {
	p := newEmail(t, func(c *EmailConfig) { c.ProviderCanonical = true })
	inputs := []any{
		"TEST@Example.com", "bob@x", "", "John <JOHN@x.io>", "mailto:a@b.co",
		"first.last+tag@googlemail.com", 7, nil,
	}

	for _, in := range inputs {
		first, err := p.Normalize(Record{"email": in})
		require.NoError(t, err)
		second, err := p.Normalize(Record{"email": first.Output["email"]})
		require.NoError(t, err)
		require.Equal(t, first.Output["email"], second.Output["email"], "input %v", in)
		require.Empty(t, second.Changed, "input %v", in)
	}
}

func TestNewEmail_RejectsUnknownOutputMode(t *testing.T) {
	cfg := DefaultEmailConfig()
	cfg.OutputMode = "replace"

	_, err := NewEmail(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Common.OutputMode")
}
