package feed

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"time"
)

const userAgent = "katechon/1.0 (+feed fetcher)"

// Fetcher downloads a syndication feed and normalizes its newest entries
type Fetcher struct {
	httpClient *http.Client
	now        func() time.Time
}

// NewFetcher creates a feed fetcher. A nil httpClient gets a plain
// http.Client with no timeout of its own.
func NewFetcher(httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Fetcher{httpClient: httpClient, now: time.Now}
}

// FetchFeed performs one GET and maps at most MaxItems entries, in the
// order the feed lists them.
func (f *Fetcher) FetchFeed(ctx context.Context, url string) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		log.Printf("[Feed] GET %s failed: %v", url, err)
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ReadError{URL: url, Err: err}
	}

	// A fresh parser per call; gofeed parsers keep per-parse state.
	parsed, err := newParser().Parse(bytes.NewReader(body))
	if err != nil {
		log.Printf("[Feed] %s (HTTP %d) did not parse as a feed: %v", url, resp.StatusCode, err)
		return nil, &ParseError{URL: url, Err: err}
	}

	entries := parsed.Items
	if len(entries) > MaxItems {
		entries = entries[:MaxItems]
	}

	fetchedAt := f.now()
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, toItem(entry, fetchedAt))
	}

	log.Printf("[Feed] %s: %d of %d entries", url, len(items), len(parsed.Items))
	return items, nil
}
