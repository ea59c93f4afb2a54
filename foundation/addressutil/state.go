package addressutil

import (
	"strings"

	"github.com/vortex-fintech/fieldnorm/foundation/textutil"
)

// State is a US state or the District of Columbia.
type State struct {
	Abbr string
	Name string
}

var states = []State{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AZ", "Arizona"}, {"AR", "Arkansas"},
	{"CA", "California"}, {"CO", "Colorado"}, {"CT", "Connecticut"}, {"DE", "Delaware"},
	{"DC", "District of Columbia"}, {"FL", "Florida"}, {"GA", "Georgia"}, {"HI", "Hawaii"},
	{"ID", "Idaho"}, {"IL", "Illinois"}, {"IN", "Indiana"}, {"IA", "Iowa"},
	{"KS", "Kansas"}, {"KY", "Kentucky"}, {"LA", "Louisiana"}, {"ME", "Maine"},
	{"MD", "Maryland"}, {"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"},
	{"MS", "Mississippi"}, {"MO", "Missouri"}, {"MT", "Montana"}, {"NE", "Nebraska"},
	{"NV", "Nevada"}, {"NH", "New Hampshire"}, {"NJ", "New Jersey"}, {"NM", "New Mexico"},
	{"NY", "New York"}, {"NC", "North Carolina"}, {"ND", "North Dakota"}, {"OH", "Ohio"},
	{"OK", "Oklahoma"}, {"OR", "Oregon"}, {"PA", "Pennsylvania"}, {"RI", "Rhode Island"},
	{"SC", "South Carolina"}, {"SD", "South Dakota"}, {"TN", "Tennessee"}, {"TX", "Texas"},
	{"UT", "Utah"}, {"VT", "Vermont"}, {"VA", "Virginia"}, {"WA", "Washington"},
	{"WV", "West Virginia"}, {"WI", "Wisconsin"}, {"WY", "Wyoming"},
}

// stateIndex keys every state by upper-case abbreviation and upper-case name.
var stateIndex = func() map[string]State {
	m := make(map[string]State, 2*len(states))
	for _, s := range states {
		m[s.Abbr] = s
		m[strings.ToUpper(s.Name)] = s
	}
	m["WASHINGTON DC"] = m["DC"]
	m["WASHINGTON D C"] = m["DC"]
	return m
}()

var punctReplacer = strings.NewReplacer(".", " ", ",", " ")

// LookupState matches an abbreviation or full name in any case. Dots and
// commas are ignored, so "N.Y." and "Washington, D.C." both match.
func LookupState(s string) (State, bool) {
	key := strings.ToUpper(textutil.CollapseSpaces(punctReplacer.Replace(s)))
	if st, ok := stateIndex[key]; ok {
		return st, true
	}
	if compact := strings.ReplaceAll(key, " ", ""); len(compact) == 2 {
		st, ok := stateIndex[compact]
		return st, ok
	}
	return State{}, false
}
