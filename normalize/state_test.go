package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

func newState(t *testing.T, mutate func(*StateConfig)) *StateProcessor {
	t.Helper()
	cfg := DefaultStateConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	p, err := NewState(cfg)
	require.NoError(t, err)
	return p
}

func TestState_NormalizeValue(t *testing.T) {
	full := func(c *StateConfig) { c.Format = StateFull }

	tests := []struct {
		name     string
		mutate   func(*StateConfig)
		in       any
		want     any
		warnings []string
	}{
		{name: "abbreviation", in: "ny", want: "NY"},
		{name: "full name to abbreviation", in: " new  york ", want: "NY"},
		{name: "abbreviation to full name", mutate: full, in: "N.Y.", want: "New York"},
		{name: "full name kept", mutate: full, in: "RHODE ISLAND", want: "Rhode Island"},
		{name: "not a state", in: "Ontario", want: nil, warnings: []string{"INVALID_STATE"}},
		{name: "number", in: 5, want: nil, warnings: []string{"INVALID_STATE"}},
		{name: "empty", in: "", want: nil, warnings: []string{"CLEANED_TO_EMPTY"}},
		{name: "nil", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newState(t, tt.mutate)
			w := warnset.New(warnset.ModeDedupe)

			got := p.NormalizeValue(tt.in, w)

			require.Equal(t, tt.want, got)
			requireWarnings(t, tt.warnings, w.Strings())
		})
	}
}

func TestState_AutoDetect(t *testing.T) {
	p := newState(t, func(c *StateConfig) { c.AutoDetect = true })

	res, err := p.Normalize(Record{"billing_state": "ca", "region": "Texas", "city": "Austin"})
	require.NoError(t, err)
	require.Equal(t, "CA", res.Output["billing_state"])
	require.Equal(t, "TX", res.Output["region"])
	require.Equal(t, "Austin", res.Output["city"])
	require.Equal(t, []string{"billing_state", "region"}, res.Changed)
}

func TestState_Idempotent(t *testing.T) {
	for _, format := range []StateFormat{StateAbbr, StateFull} {
		p := newState(t, func(c *StateConfig) { c.Format = format })
		for _, in := range []any{"ny", "district of columbia", "Ontario", "", nil} {
			first, err := p.Normalize(Record{"state": in})
			require.NoError(t, err)
			second, err := p.Normalize(Record{"state": first.Output["state"]})
			require.NoError(t, err)
			require.Equal(t, first.Output["state"], second.Output["state"], "input %v", in)
			require.Empty(t, second.Changed, "input %v", in)
		}
	}
}

func TestNewState_RejectsUnknownFormat(t *testing.T) {
	cfg := DefaultStateConfig()
	cfg.Format = "postal"
	_, err := NewState(cfg)
	require.Error(t, err)
}
