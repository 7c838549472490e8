package pagesift

import "context"

// Fetcher retrieves rendered HTML from live pages. It is the host
// capability that feeds the parsing engine; implementations may use browser
// automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for JavaScript to render,
	// and returns the rendered HTML of the whole page.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// FetchElement navigates to the URL and returns the outerHTML of the
	// first element matching the CSS selector.
	// Returns ENOTFOUND if no element matches.
	FetchElement(ctx context.Context, url string, selector string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
