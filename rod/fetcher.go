// Package rod supplies raw HTML from live pages using Chrome browser
// automation. It is the host capability feeding the parsing engine:
// callers typically fetch a whole rendered page, or the outerHTML of one
// queried element, and hand the markup to a pagesift.Parser.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pagesift/pagesift"
)

// Ensure Fetcher implements pagesift.Fetcher at compile time.
var _ pagesift.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL and returns the rendered HTML of the whole
// page.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	page, err := f.openPage(ctx, url)
	if err != nil {
		return "", err
	}
	defer page.Close()

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// FetchElement navigates to the URL and returns the outerHTML of the
// first element matching the CSS selector. The context bounds how long
// the element is waited for.
func (f *Fetcher) FetchElement(ctx context.Context, url string, selector string) (string, error) {
	page, err := f.openPage(ctx, url)
	if err != nil {
		return "", err
	}
	defer page.Close()

	el, err := page.Element(selector)
	if err != nil {
		return "", pagesift.Errorf(pagesift.ENOTFOUND, "Scope element not found: %s", selector)
	}

	html, err := el.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// openPage creates a page bound to ctx, navigates to the URL and waits
// for it to load.
func (f *Fetcher) openPage(ctx context.Context, url string) (*rod.Page, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		page.Close()
		return nil, err
	}

	if err := page.WaitLoad(); err != nil {
		page.Close()
		return nil, err
	}

	return page, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
