package contactutil

import "testing"

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "bare address", in: "bob@example.com", want: "bob@example.com", wantOK: true},
		{name: "display name", in: `"Bob Smith" <Bob@Example.com>`, want: "Bob@Example.com", wantOK: true},
		{name: "mailto", in: "mailto:bob@example.com", want: "bob@example.com", wantOK: true},
		{name: "sentence", in: "write to bob@example.com.", want: "bob@example.com", wantOK: true},
		{name: "first of many", in: "a@x.io; b@y.io", want: "a@x.io", wantOK: true},
		{name: "no tld", in: "bob@localhost", wantOK: false},
		{name: "no address", in: "n/a", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractEmail(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ExtractEmail(%q) = (%q, %t), want (%q, %t)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsEmailShape(t *testing.T) {
	valid := []string{"test@example.com", "a.b+c@sub.example.co.uk", "x@y.z"}
	invalid := []string{"bob@x", "bob @x.com", "@x.com", "bob@", "a@b@c.com", ""}

	for _, s := range valid {
		if !IsEmailShape(s) {
			t.Fatalf("expected %q to be accepted", s)
		}
	}
	for _, s := range invalid {
		if IsEmailShape(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestStripMailto(t *testing.T) {
	if got := StripMailto("MailTo:a@b.co"); got != "a@b.co" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := StripMailto("a@b.co"); got != "a@b.co" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestCanonicalEmail_Idempotent(t *testing.T) {
	for _, in := range []string{"John.Doe+news@Gmail.com", "someone@example.org"} {
		once := CanonicalEmail(in)
		if once == "" {
			t.Fatalf("CanonicalEmail(%q) returned empty", in)
		}
		if twice := CanonicalEmail(once); twice != once {
			t.Fatalf("CanonicalEmail not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}
