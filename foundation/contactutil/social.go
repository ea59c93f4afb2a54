package contactutil

import (
	"regexp"
	"strings"
)

// Network is a social network whose profile links can be normalized.
type Network string

const (
	LinkedIn  Network = "linkedin"
	Facebook  Network = "facebook"
	Instagram Network = "instagram"
)

var networkKeywords = []struct {
	network  Network
	keywords []string
}{
	{LinkedIn, []string{"linkedin", "lnkd"}},
	{Facebook, []string{"facebook", "fb"}},
	{Instagram, []string{"instagram", "insta"}},
}

// ParseNetwork accepts a network name in any case.
func ParseNetwork(s string) (Network, bool) {
	switch n := Network(strings.ToLower(strings.TrimSpace(s))); n {
	case LinkedIn, Facebook, Instagram:
		return n, true
	}
	return "", false
}

// NetworkForKey guesses the network from a field name such as "company_linkedin".
func NetworkForKey(key string) (Network, bool) {
	lk := strings.ToLower(key)
	for _, nk := range networkKeywords {
		for _, kw := range nk.keywords {
			if strings.Contains(lk, kw) {
				return nk.network, true
			}
		}
	}
	return "", false
}

var (
	linkedinPaths = []string{"/in/", "/company/", "/school/", "/showcase/", "/groups/"}

	facebookHosts = map[string]bool{
		"facebook.com": true, "www.facebook.com": true, "m.facebook.com": true,
		"fb.com": true, "www.fb.com": true,
	}
	facebookRejected = []string{
		"/posts/", "/post/", "/photos/", "/photo/", "/videos/", "/video/",
		"/reel/", "/story.php", "/share/", "/groups/", "/watch/",
	}
	facebookPrefixes = []string{
		"/profile.php", "/people/", "/public/", "/pages/", "/pg/", "/business/", "/marketplace/",
	}
	facebookReserved = map[string]bool{"home": true, "pages": true, "marketplace": true}

	instagramHosts    = map[string]bool{"instagram.com": true, "www.instagram.com": true}
	instagramRejected = []string{
		"/p/", "/reel/", "/reels/", "/tv/", "/stories/", "/story/", "/s/",
		"/explore/", "/direct/", "/tags/", "/challenge/",
	}
	instagramUserRe = regexp.MustCompile(`^@?([A-Za-z0-9._]{1,30})$`)
)

// CanonicalProfile reduces a profile or page link to "www.<host><path>".
// Links to posts, media or other non-profile pages are rejected. Instagram
// also accepts a bare "@user" handle.
func CanonicalProfile(n Network, s string) (string, bool) {
	switch n {
	case LinkedIn:
		return linkedinProfile(s)
	case Facebook:
		return facebookProfile(s)
	case Instagram:
		return instagramProfile(s)
	}
	return "", false
}

func linkedinProfile(s string) (string, bool) {
	p, ok := ParseWebURL(s)
	if !ok || (p.Host != "linkedin.com" && !strings.HasSuffix(p.Host, ".linkedin.com")) {
		return "", false
	}
	lp := strings.ToLower(p.Path) + "/"
	if !hasAnyPrefix(lp, linkedinPaths) {
		return "", false
	}
	p.Host = "www.linkedin.com"
	return p.String(), true
}

func facebookProfile(s string) (string, bool) {
	p, ok := ParseWebURL(s)
	if !ok || !facebookHosts[p.Host] {
		return "", false
	}
	lp := strings.ToLower(p.Path) + "/"
	if containsAny(lp, facebookRejected) {
		return "", false
	}
	if !hasAnyPrefix(lp, facebookPrefixes) {
		segs := segments(p.Path)
		if len(segs) != 1 || facebookReserved[strings.ToLower(segs[0])] {
			return "", false
		}
	}
	if p.Host == "m.facebook.com" {
		p.Host = "facebook.com"
	}
	p.Host = withWWW(p.Host)

	// Numeric profiles are addressed by ?id=, the only query kept.
	if strings.EqualFold(p.Path, "/profile.php") {
		id := p.Query.Get("id")
		if id == "" || strings.Trim(id, "0123456789") != "" {
			return "", false
		}
		return p.String() + "?id=" + id, true
	}
	return p.String(), true
}

func instagramProfile(s string) (string, bool) {
	v := strings.Join(strings.Fields(s), "")
	// A dotted handle needs the "@" to tell it from a host name.
	if m := instagramUserRe.FindStringSubmatch(v); m != nil && (strings.HasPrefix(v, "@") || !strings.Contains(v, ".")) {
		return "www.instagram.com/" + m[1], true
	}

	p, ok := ParseWebURL(v)
	if !ok || !instagramHosts[p.Host] {
		return "", false
	}
	if containsAny(strings.ToLower(p.Path)+"/", instagramRejected) {
		return "", false
	}
	segs := segments(p.Path)
	if len(segs) != 1 || !instagramUserRe.MatchString(segs[0]) {
		return "", false
	}
	return "www.instagram.com/" + segs[0], true
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, parts []string) bool {
	for _, p := range parts {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func segments(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
