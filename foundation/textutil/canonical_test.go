package textutil

import "testing"

func TestCollapseSpaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "collapses spaces and trims", in: "  hello  \u00A0world  ", want: "hello world"},
		{name: "folds tabs and newlines", in: "a\t\tb\n\nc", want: "a b c"},
		{name: "blank", in: " \t\n ", want: ""},
		{name: "already clean", in: "Bob Smith", want: "Bob Smith"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CollapseSpaces(tt.in); got != tt.want {
				t.Fatalf("CollapseSpaces(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
