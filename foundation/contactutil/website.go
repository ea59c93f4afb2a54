package contactutil

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var schemeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// URLParts is a web address reduced to what identifies a site or profile.
type URLParts struct {
	Host string // lowercase IDNA lookup form, port kept when present
	Path string // escaped, no trailing slash, repeated slashes folded
	// Query is parsed but not rendered by String.
	Query url.Values
}

func (p URLParts) String() string { return p.Host + p.Path }

// ParseWebURL reads a website-like value. All whitespace is removed, a missing
// scheme is taken as https and only http and https are accepted. Query,
// fragment and credentials are dropped. The host must have a dot.
func ParseWebURL(s string) (URLParts, bool) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return URLParts{}, false
	}
	if !schemeRe.MatchString(s) {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return URLParts{}, false
	}

	host, ok := lookupHost(u.Hostname())
	if !ok {
		return URLParts{}, false
	}
	if port := u.Port(); port != "" {
		host = net.JoinHostPort(host, port)
	}
	return URLParts{Host: host, Path: cleanPath(u.EscapedPath()), Query: u.Query()}, true
}

func lookupHost(h string) (string, bool) {
	h = strings.TrimSuffix(h, ".")
	if h == "" {
		return "", false
	}
	if ip := net.ParseIP(h); ip != nil {
		// IPv6 hosts are not websites in contact data.
		if ip.To4() == nil {
			return "", false
		}
		return ip.String(), true
	}
	ascii, err := idna.Lookup.ToASCII(h)
	if err != nil || !strings.Contains(ascii, ".") {
		return "", false
	}
	for _, label := range strings.Split(ascii, ".") {
		if label == "" {
			return "", false
		}
	}
	return ascii, true
}

func cleanPath(p string) string {
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return strings.TrimRight(p, "/")
}

// CanonicalWebsite renders a website as host plus path, e.g.
// "https://Example.com/About/?utm=x" becomes "www.example.com/About".
// With ensureWWW a "www." label is prepended to named hosts that lack it.
func CanonicalWebsite(s string, ensureWWW bool) (string, bool) {
	p, ok := ParseWebURL(s)
	if !ok {
		return "", false
	}
	if ensureWWW {
		p.Host = withWWW(p.Host)
	}
	return p.String(), true
}

func withWWW(host string) string {
	name, _, err := net.SplitHostPort(host)
	if err != nil {
		name = host
	}
	if strings.HasPrefix(host, "www.") || net.ParseIP(name) != nil {
		return host
	}
	return "www." + host
}
