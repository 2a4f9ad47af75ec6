package enrzones

import "context"

// Fetcher retrieves raw source documents from URLs.
type Fetcher interface {
	// Fetch returns the document body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body []byte, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
