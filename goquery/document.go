package goquery

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/pagesift/pagesift"
)

// newDocument parses raw HTML into an ephemeral document. Returns EPARSE
// when the underlying parser fails or reports an error node.
func newDocument(raw string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EPARSE, "failed to parse HTML: %v", err)
	}
	if doc.Find("parsererror").Length() > 0 {
		return nil, pagesift.Errorf(pagesift.EPARSE, "HTML parser reported an error node")
	}
	return doc, nil
}

// rootSelection picks the element traversal starts from. Input is commonly
// the outerHTML of a single element, which the parser wraps in a synthetic
// body; a lone body child is unwrapped so it becomes the root. Full
// documents and multi-rooted fragments keep body itself as the root.
func rootSelection(doc *goquery.Document) *goquery.Selection {
	body := doc.Find("body").First()
	if children := body.Children(); children.Length() == 1 {
		return children.First()
	}
	return body
}

// pageMetadata extracts title and canonical URL from the document and
// stamps the result with extraction time and a hash of the raw input.
func pageMetadata(doc *goquery.Document, raw string) pagesift.PageMetadata {
	md := pagesift.PageMetadata{
		Timestamp:   timestamp(),
		ContentHash: contentHash(raw),
	}

	md.Title = pagesift.CompactText(doc.Find("title").First().Text())
	if md.Title == "" {
		if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
			md.Title = pagesift.CompactText(og)
		}
	}

	if canonical, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && canonical != "" {
		md.URL = canonical
	} else if og, ok := doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok {
		md.URL = og
	}

	return md
}

// timestamp returns the current time in RFC 3339 UTC.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// contentHash computes the xxHash of the raw input as a hex string.
func contentHash(raw string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(raw))
}
