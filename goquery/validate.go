package goquery

import (
	"regexp"
	"strings"

	"github.com/pagesift/pagesift"
)

// tagLike is the cheap probe for "looks like markup": at least one
// tag-shaped substring.
var tagLike = regexp.MustCompile(`<[^>]+>`)

// validateInput rejects input no parser could do anything useful with.
// Returns EINVALID for empty, whitespace-only, or tag-free input.
func validateInput(html string) error {
	if strings.TrimSpace(html) == "" {
		return pagesift.Errorf(pagesift.EINVALID, "HTML input cannot be empty or whitespace-only")
	}
	if !tagLike.MatchString(html) {
		return pagesift.Errorf(pagesift.EINVALID, "HTML input must contain at least one tag")
	}
	return nil
}
