// Package linkedin canonicalizes LinkedIn profile URLs so that the many
// shapes the same profile arrives in (sales navigator links, mobile links,
// scheme or www variations) all resolve to one stored form.
package linkedin

import (
	"fmt"
	"regexp"
	"strings"
)

const canonicalBase = "https://www.linkedin.com/in/"

// Known profile URL shapes, in match order. All rewrite to the /in/{id} form.
var profilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`linkedin\.com/in/([^/?#]+)`),
	regexp.MustCompile(`linkedin\.com/sales/lead/([^/?#,]+)`),
	regexp.MustCompile(`linkedin\.com/sales/people/([^/?#,]+)`),
}

// CanonicalProfileURL returns the canonical form of a profile reference.
// A public identifier wins over the raw URL when present. URLs that match
// no known LinkedIn shape are returned unchanged.
func CanonicalProfileURL(publicID, profileURL string) string {
	if publicID != "" {
		return canonicalBase + publicID
	}
	for _, pattern := range profilePatterns {
		if m := pattern.FindStringSubmatch(profileURL); m != nil {
			return canonicalBase + m[1]
		}
	}
	return strings.TrimSpace(profileURL)
}

// Variations generates every lookup form of a canonical URL: the cross
// product of {https,http} x {www.,bare} x {trailing slash,none} plus a
// scheme-less form, deduplicated and in deterministic order.
func Variations(canonical string) []string {
	bare := stripScheme(canonical)
	bare = strings.TrimSuffix(bare, "/")
	if bare == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var variations []string
	add := func(v string) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			variations = append(variations, v)
		}
	}

	hosts := []string{bare}
	if trimmed := strings.TrimPrefix(bare, "www."); trimmed != bare {
		hosts = append(hosts, trimmed)
	} else {
		hosts = append(hosts, "www."+bare)
	}

	for _, scheme := range []string{"https://", "http://"} {
		for _, host := range hosts {
			add(scheme + host)
			add(scheme + host + "/")
		}
	}
	for _, host := range hosts {
		add(host)
	}

	return variations
}

func stripScheme(u string) string {
	if i := strings.Index(u, "://"); i >= 0 {
		return u[i+3:]
	}
	return u
}

// ProfileKey extracts the public identifier from a canonical /in/ URL,
// or returns an error for non-canonical input.
func ProfileKey(canonical string) (string, error) {
	m := profilePatterns[0].FindStringSubmatch(canonical)
	if m == nil {
		return "", fmt.Errorf("not a canonical profile URL: %s", canonical)
	}
	return m[1], nil
}
