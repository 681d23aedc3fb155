// Package scan orchestrates one scan request: local validation, quota
// admission against a freshly fetched count, submission to the external
// scanner, and post-completion count reconciliation.
package scan

import (
	"regexp"
	"strings"
)

// domainPattern accepts dotted hostnames with RFC-ish labels and an
// alphabetic final label of at least two characters. Matches the scanner
// backend's own validator.
var domainPattern = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// ValidDomain reports whether domain is syntactically scannable.
func ValidDomain(domain string) bool {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return false
	}
	return domainPattern.MatchString(domain)
}
