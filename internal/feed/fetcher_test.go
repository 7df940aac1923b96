package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func rssWithItems(n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Wire</title><link>http://example.com</link><description>news</description>`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<item><title>Story %d</title><link>http://example.com/%d</link><description>Body %d</description><pubDate>Mon, 0%d Jan 2024 10:00:00 +0000</pubDate></item>`, i, i, i, (i%9)+1)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func serveBody(t *testing.T, body string) *httptest.Server {
	t.Helper()
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func TestFetchFeed_CapsAtTenInSourceOrder(t *testing.T) {
	s := serveBody(t, rssWithItems(15))

	items, err := NewFetcher(nil).FetchFeed(context.Background(), s.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(items))
	}
	for i, it := range items {
		want := fmt.Sprintf("Story %d", i+1)
		if it.Title != want {
			t.Errorf("item %d: expected title %q, got %q", i, want, it.Title)
		}
	}
}

func TestFetchFeed_FewerThanTen(t *testing.T) {
	s := serveBody(t, rssWithItems(3))

	items, err := NewFetcher(nil).FetchFeed(context.Background(), s.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
}

func TestFetchFeed_MapsFields(t *testing.T) {
	s := serveBody(t, rssWithItems(1))

	items, err := NewFetcher(nil).FetchFeed(context.Background(), s.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := items[0]
	if it.Title != "Story 1" || it.Description != "Body 1" || it.Link != "http://example.com/1" {
		t.Errorf("unexpected item: %+v", it)
	}
	if it.Published != "2024-01-02T10:00:00Z" {
		t.Errorf("expected RFC3339 publish date, got %q", it.Published)
	}
	if it.Lat != nil || it.Lng != nil || it.HasLocation() {
		t.Errorf("expected no coordinates, got lat=%v lng=%v", it.Lat, it.Lng)
	}
}

func TestFetchFeed_Fallbacks(t *testing.T) {
	body := `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>` +
		`<item><category>misc</category></item>` +
		`</channel></rss>`
	s := serveBody(t, body)

	fixed := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	f := NewFetcher(nil)
	f.now = func() time.Time { return fixed }

	items, err := f.FetchFeed(context.Background(), s.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.Title != "Untitled" {
		t.Errorf("expected Untitled, got %q", it.Title)
	}
	if it.Description != "No description" {
		t.Errorf("expected No description, got %q", it.Description)
	}
	if it.Link != "" {
		t.Errorf("expected empty link, got %q", it.Link)
	}
	if it.Published != "2025-03-04T05:06:07Z" {
		t.Errorf("expected fetch time as published, got %q", it.Published)
	}
}

func TestFetchFeed_Atom(t *testing.T) {
	body := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom wire</title>
  <id>urn:feed</id>
  <updated>2024-05-01T00:00:00Z</updated>
  <entry>
    <title>First</title>
    <id>urn:1</id>
    <link href="http://example.com/first"/>
    <summary>Summary one</summary>
    <published>2024-05-01T12:30:00Z</published>
    <updated>2024-05-01T12:30:00Z</updated>
  </entry>
  <entry>
    <id>urn:2</id>
    <updated>2024-05-02T00:00:00Z</updated>
  </entry>
</feed>`
	s := serveBody(t, body)

	fixed := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	f := NewFetcher(nil)
	f.now = func() time.Time { return fixed }

	items, err := f.FetchFeed(context.Background(), s.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "First" || items[0].Link != "http://example.com/first" || items[0].Description != "Summary one" {
		t.Errorf("unexpected first entry: %+v", items[0])
	}
	if items[0].Published != "2024-05-01T12:30:00Z" {
		t.Errorf("unexpected published: %q", items[0].Published)
	}
	if items[1].Title != "Untitled" || items[1].Description != "No description" {
		t.Errorf("expected fallbacks on second entry, got %+v", items[1])
	}
	// <updated> alone is not a publish date
	if items[1].Published != "2025-03-04T05:06:07Z" {
		t.Errorf("expected fetch time as published for entry without <published>, got %q", items[1].Published)
	}
}

func TestFetchFeed_BlankFieldsUseFallbacks(t *testing.T) {
	body := `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>` +
		`<item><title></title><description>   </description><link>http://example.com/blank</link></item>` +
		`<item><title>  Padded  </title><description>` + "\n\t" + `</description></item>` +
		`</channel></rss>`
	s := serveBody(t, body)

	items, err := NewFetcher(nil).FetchFeed(context.Background(), s.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "Untitled" || items[0].Description != "No description" {
		t.Errorf("blank fields should fall back, got %+v", items[0])
	}
	if items[0].Link != "http://example.com/blank" {
		t.Errorf("unexpected link: %q", items[0].Link)
	}
	if items[1].Title != "Padded" || items[1].Description != "No description" {
		t.Errorf("expected trimmed title and fallback description, got %+v", items[1])
	}
}

func TestFetchFeed_NotAFeed(t *testing.T) {
	s := serveBody(t, "<html><body>not a feed</body></html>")

	_, err := NewFetcher(nil).FetchFeed(context.Background(), s.URL)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "feed parse error") {
		t.Errorf("expected kind in message, got: %v", err)
	}
}

func TestFetchFeed_ConnectionRefused(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := s.URL
	s.Close()

	_, err := NewFetcher(nil).FetchFeed(context.Background(), url)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
}

func TestFetchFeed_TruncatedBody(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "4096")
		w.Write([]byte("<rss><channel>"))
	}))
	defer s.Close()

	_, err := NewFetcher(nil).FetchFeed(context.Background(), s.URL)
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected ReadError, got %T: %v", err, err)
	}
}

func TestFetchFeed_InvalidURL(t *testing.T) {
	_, err := NewFetcher(nil).FetchFeed(context.Background(), "://bad")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
}
