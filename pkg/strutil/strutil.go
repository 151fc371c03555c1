// Package strutil normalizes free-form strings into database-safe
// identifiers and keys.
package strutil

import (
	"regexp"
	"strings"
)

// MaxCharFieldLen is the default length of VARCHAR columns holding names
// and keys.
const MaxCharFieldLen = 255

var (
	nonWordRuns    = regexp.MustCompile(`[^\pL\pN_]+`)
	underscoreRuns = regexp.MustCompile(`_{2,}`)
)

// clean replaces every run of characters that aren't letters, digits or
// underscores with a single underscore, trims underscores from both ends
// and collapses any runs of underscores left over.
func clean(s string) string {
	s = nonWordRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	return underscoreRuns.ReplaceAllString(s, "_")
}

// SnakeCase returns s cleaned and lower-cased, e.g. "Hello__World!!"
// becomes "hello_world".
func SnakeCase(s string) string {
	return strings.ToLower(clean(s))
}

// UpperCase returns s cleaned and upper-cased, e.g. "Hello__World!!"
// becomes "HELLO_WORLD".
func UpperCase(s string) string {
	return strings.ToUpper(clean(s))
}
