package pathutil

import "testing"

func TestResolve(t *testing.T) {
	rec := map[string]any{
		"email": "a@b.co",
		"contact": map[string]any{
			"phone": "+15555550100",
			"meta":  map[string]any{"source": "crm"},
			"empty": nil,
		},
		"tags":   []any{"x"},
		"scalar": 42,
	}

	tests := []struct {
		name      string
		path      string
		want      any
		wantFound bool
	}{
		{name: "top level", path: "email", want: "a@b.co", wantFound: true},
		{name: "nested", path: "contact.phone", want: "+15555550100", wantFound: true},
		{name: "deep", path: "contact.meta.source", want: "crm", wantFound: true},
		{name: "present nil", path: "contact.empty", want: nil, wantFound: true},
		{name: "missing key", path: "contact.fax", wantFound: false},
		{name: "descend into scalar", path: "scalar.x", wantFound: false},
		{name: "descend into slice", path: "tags.0", wantFound: false},
		{name: "empty path", path: "", wantFound: false},
		{name: "empty segment", path: "contact..phone", wantFound: false},
		{name: "leading dot", path: ".email", wantFound: false},
		{name: "trailing dot", path: "email.", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Resolve(rec, tt.path)
			if found != tt.wantFound {
				t.Fatalf("Resolve(%q) found = %v, want %v", tt.path, found, tt.wantFound)
			}
			if found && got != tt.want {
				t.Fatalf("Resolve(%q) = %#v, want %#v", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolve_NilRecord(t *testing.T) {
	if _, found := Resolve(nil, "email"); found {
		t.Fatalf("expected not found on nil record")
	}
	if Has(nil, "email") {
		t.Fatalf("Has on nil record must be false")
	}
}

func TestSplit(t *testing.T) {
	segs, ok := Split("a.b.c")
	if !ok || len(segs) != 3 || segs[2] != "c" {
		t.Fatalf("unexpected split: %v %v", segs, ok)
	}
	if _, ok := Split("a..c"); ok {
		t.Fatalf("expected empty segment to be rejected")
	}
}
