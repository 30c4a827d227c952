package urlcheck

import (
	"net"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"
)

//
// URL SIGNALS
//

const maxURLLength = 100

// parseURL returns the parsed URL when it has both a scheme and an authority.
func parseURL(raw string) (*url.URL, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}

func hasHTTPS(u *url.URL) bool {
	return strings.EqualFold(u.Scheme, "https")
}

func isTooLong(raw string) bool {
	return utf8.RuneCountInString(raw) > maxURLLength
}

// usesIPAddress reports whether the host (port stripped) is an IPv4 or IPv6 literal.
func usesIPAddress(u *url.URL) bool {
	return net.ParseIP(u.Hostname()) != nil
}

// keywordHits returns every keyword found in the lowercased URL, in list order.
// On a brand's own registrable domain (google.com for "google") the brand
// keyword only counts if it appears somewhere else in the URL too.
func keywordHits(raw string, u *url.URL, keywords []string, owned map[string]bool) []string {
	lower := strings.ToLower(raw)
	registrable, label := ownDomain(u)
	if !owned[registrable] {
		label = ""
	}

	var found []string
	for _, kw := range keywords {
		haystack := lower
		if label != "" && kw == label {
			haystack = strings.Replace(lower, registrable, "", 1)
		}
		if strings.Contains(haystack, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// ownDomain returns the registrable domain of the host and its first label.
func ownDomain(u *url.URL) (string, string) {
	host := strings.ToLower(u.Hostname())
	if net.ParseIP(host) != nil {
		return "", ""
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", ""
	}
	return registrable, strings.SplitN(registrable, ".", 2)[0]
}

func isShortened(u *url.URL, shorteners []string) bool {
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	for _, s := range shorteners {
		if strings.Contains(host, s) {
			return true
		}
	}
	return false
}

// hasManySubdomains flags hosts with more than three labels (sub.sub.example.com).
// A dotted IPv4 literal has four labels and counts too.
func hasManySubdomains(u *url.URL) bool {
	return len(strings.Split(u.Hostname(), ".")) > 3
}

// lowerAll lowercases and trims every entry, dropping blanks and duplicates.
func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
