package contactutil

import "testing"

func TestCanonicalProfile(t *testing.T) {
	tests := []struct {
		name      string
		network   Network
		in        string
		want      string
		wantValid bool
	}{
		{name: "linkedin person", network: LinkedIn, in: "https://LinkedIn.com/in/JDoe/", want: "www.linkedin.com/in/JDoe", wantValid: true},
		{name: "linkedin country host", network: LinkedIn, in: "uk.linkedin.com/company/acme", want: "www.linkedin.com/company/acme", wantValid: true},
		{name: "linkedin feed", network: LinkedIn, in: "linkedin.com/feed/"},
		{name: "linkedin lookalike", network: LinkedIn, in: "notlinkedin.com/in/x"},
		{name: "facebook page name", network: Facebook, in: "fb.com/Acme", want: "www.fb.com/Acme", wantValid: true},
		{name: "facebook mobile pages", network: Facebook, in: "https://m.facebook.com/pages/Acme/123", want: "www.facebook.com/pages/Acme/123", wantValid: true},
		{name: "facebook numeric profile", network: Facebook, in: "facebook.com/profile.php?id=100004&ref=x", want: "www.facebook.com/profile.php?id=100004", wantValid: true},
		{name: "facebook profile without id", network: Facebook, in: "facebook.com/profile.php"},
		{name: "facebook post", network: Facebook, in: "facebook.com/acme/posts/1"},
		{name: "facebook home", network: Facebook, in: "facebook.com/home"},
		{name: "facebook other host", network: Facebook, in: "example.com/acme"},
		{name: "instagram handle", network: Instagram, in: "@Jane.Doe", want: "www.instagram.com/Jane.Doe", wantValid: true},
		{name: "instagram bare handle", network: Instagram, in: "jane_doe", want: "www.instagram.com/jane_doe", wantValid: true},
		{name: "instagram url", network: Instagram, in: "https://instagram.com/jane_doe/?hl=en", want: "www.instagram.com/jane_doe", wantValid: true},
		{name: "instagram post", network: Instagram, in: "instagram.com/p/abc"},
		{name: "instagram host only", network: Instagram, in: "instagram.com"},
		{name: "unknown network", network: Network("myspace"), in: "myspace.com/tom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalProfile(tt.network, tt.in)
			if ok != tt.wantValid || got != tt.want {
				t.Fatalf("CanonicalProfile(%s, %q) = (%q, %t), want (%q, %t)", tt.network, tt.in, got, ok, tt.want, tt.wantValid)
			}
			if !ok {
				return
			}
			again, ok := CanonicalProfile(tt.network, got)
			if !ok || again != got {
				t.Fatalf("not stable: %q -> (%q, %t)", got, again, ok)
			}
		})
	}
}

func TestNetworkLookup(t *testing.T) {
	if n, ok := ParseNetwork(" LinkedIn "); !ok || n != LinkedIn {
		t.Fatalf("ParseNetwork: got (%q, %t)", n, ok)
	}
	if _, ok := ParseNetwork("twitter"); ok {
		t.Fatalf("twitter must not parse")
	}

	keys := map[string]Network{
		"company_linkedin": LinkedIn,
		"fb_page":          Facebook,
		"Insta":            Instagram,
	}
	for key, want := range keys {
		if got, ok := NetworkForKey(key); !ok || got != want {
			t.Fatalf("NetworkForKey(%q) = (%q, %t), want %q", key, got, ok, want)
		}
	}
	if _, ok := NetworkForKey("twitter"); ok {
		t.Fatalf("twitter must not match a network")
	}
}
