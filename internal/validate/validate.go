// Package validate holds the few presence/format checks done at the HTTP boundary.
package validate

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like an address (something@something.tld).
func Email(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Blank reports whether any of the values is empty after trimming.
func Blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
