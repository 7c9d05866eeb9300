// Package link decides whether inbound text is a link to the supported video
// host. The check parses the URL properly (scheme + host) instead of
// substring matching, so text that merely mentions the host name no longer
// passes.
package link

import (
	"net/url"
	"strings"
)

// Accepted host forms: the full-domain form and the short-link form.
const (
	hostFull  = "youtube.com"
	hostShort = "youtu.be"
)

// Valid reports whether text is a well-formed http(s) URL pointing at the
// supported video host. Subdomains of the full form (www, m, music) are
// accepted.
func Valid(text string) bool {
	u, err := url.Parse(strings.TrimSpace(text))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == hostFull || host == hostShort {
		return true
	}
	return strings.HasSuffix(host, "."+hostFull)
}
