package driven

import "context"

// Fetcher retrieves a remote document body for diffing.
type Fetcher interface {
	// Fetch downloads the resource at url.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
