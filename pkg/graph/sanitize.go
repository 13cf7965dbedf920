package graph

import (
	"net/url"
	"strings"
)

// SanitizeURIComponent turns an arbitrary string into a token safe for use
// as a URI path segment. Every character outside [0-9A-Za-z_] becomes an
// underscore, runs of underscores collapse to one, and the result is
// percent-escaped as a final guard. The transformation is idempotent.
func SanitizeURIComponent(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	lastUnderscore := false
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			b.WriteByte(c)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	// After the replacement pass only unreserved characters remain, so
	// escaping is a no-op; it stays as a guard for the URI contract.
	return url.PathEscape(b.String())
}
