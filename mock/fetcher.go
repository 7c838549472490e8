package mock

import (
	"context"

	"github.com/pagesift/pagesift"
)

var _ pagesift.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagesift.Fetcher.
type Fetcher struct {
	FetchFn        func(ctx context.Context, url string) (string, error)
	FetchElementFn func(ctx context.Context, url string, selector string) (string, error)
	CloseFn        func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) FetchElement(ctx context.Context, url string, selector string) (string, error) {
	return f.FetchElementFn(ctx, url, selector)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
