package pagesift

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	aroundBracket = regexp.MustCompile(`\s*([{}\[\]<>])\s*`)
	beforePunct   = regexp.MustCompile(`\s+([,;:])`)
)

// CompactText collapses whitespace into single spaces, trims the result,
// and removes incidental spacing around JSON/HTML punctuation so inline
// scripts or serialized fragments don't bloat extracted text.
func CompactText(s string) string {
	s = strings.NewReplacer("\n", " ", "\t", " ", "\r", " ").Replace(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = aroundBracket.ReplaceAllString(s, "$1")
	s = beforePunct.ReplaceAllString(s, "$1")
	return s
}

// Truncate bounds s to max runes. When truncation occurs the result is
// exactly max runes long: a prefix of max-3 runes plus "...". The ellipsis
// counts against max.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
