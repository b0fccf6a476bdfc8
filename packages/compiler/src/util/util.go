package util

import (
	"regexp"
	"strings"
)

var upperRunRegexp = regexp.MustCompile(`[A-Z]+`)

// HasUpper reports whether the name contains an upper-case ASCII letter
func HasUpper(name string) bool {
	return upperRunRegexp.MatchString(name)
}

// UpperRunsToDashCase converts a camelCase name to dash-case.
// Each upper-case run gets a leading '-' unless it starts the name, and the
// whole result is lower-cased: "bindChange" -> "bind-change", "onURLLoad" -> "on-urlload".
func UpperRunsToDashCase(name string) string {
	var b strings.Builder
	last := 0
	for _, loc := range upperRunRegexp.FindAllStringIndex(name, -1) {
		b.WriteString(name[last:loc[0]])
		if loc[0] != 0 {
			b.WriteByte('-')
		}
		b.WriteString(name[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(name[last:])
	return strings.ToLower(b.String())
}
