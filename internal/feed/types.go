package feed

import "fmt"

// MaxItems caps how many entries a single fetch returns
const MaxItems = 10

// Fallbacks for entries that omit a field
const (
	DefaultTitle       = "Untitled"
	DefaultDescription = "No description"
)

// Item is one normalized feed entry as handed to the UI
type Item struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Published   string   `json:"published"` // RFC3339
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

// HasLocation reports whether both coordinates are set
func (i Item) HasLocation() bool {
	return i.Lat != nil && i.Lng != nil
}

// FetchError is a transport failure while requesting the feed
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error: failed to fetch feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ReadError means the response body could not be read
type ReadError struct {
	URL string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error: failed to read feed content from %s: %v", e.URL, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError means the body is neither RSS nor Atom
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("feed parse error: failed to parse feed %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
