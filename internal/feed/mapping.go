package feed

import (
	"time"

	"github.com/mmcdole/gofeed"
)

func toItem(entry *gofeed.Item, fetchedAt time.Time) Item {
	lat, lng := extractGeolocation(entry)
	return Item{
		Title:       orDefault(entry.Title, DefaultTitle),
		Description: orDefault(entry.Description, DefaultDescription),
		Link:        firstLink(entry),
		Published:   publishedOr(entry, fetchedAt).Format(time.RFC3339),
		Lat:         lat,
		Lng:         lng,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func firstLink(entry *gofeed.Item) string {
	if entry.Link != "" {
		return entry.Link
	}
	if len(entry.Links) > 0 {
		return entry.Links[0]
	}
	return ""
}

func publishedOr(entry *gofeed.Item, fallback time.Time) time.Time {
	if entry.PublishedParsed != nil {
		return *entry.PublishedParsed
	}
	return fallback
}

// extractGeolocation never reads geo extensions (GeoRSS and friends);
// items are located later from their text.
func extractGeolocation(entry *gofeed.Item) (lat, lng *float64) {
	return nil, nil
}
