package navdir

import "context"

// Fetcher retrieves raw markup for the page the catalog is built from.
type Fetcher interface {
	// Fetch retrieves the HTML at url.
	// Returns EFETCH if the source is unreachable or the response is not successful.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
