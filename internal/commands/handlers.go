package commands

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"katechon/internal/feed"
	"katechon/internal/geo"
	"katechon/internal/llm"
)

type callOllamaArgs struct {
	URL          *string `json:"url"`
	Model        *string `json:"model"`
	SystemPrompt *string `json:"systemPrompt"`
	UserMessage  *string `json:"userMessage"`
}

type feedArgs struct {
	URL *string `json:"url"`
}

type guessArgs struct {
	Text *string `json:"text"`
}

func callOllamaHandler(relay *llm.Client) Handler {
	return func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
		var args callOllamaArgs
		if err := decodeArgs(CallOllama, raw, &args); err != nil {
			return nil, err
		}
		url, err := require(CallOllama, "url", args.URL)
		if err != nil {
			return nil, err
		}
		model, err := require(CallOllama, "model", args.Model)
		if err != nil {
			return nil, err
		}
		system, err := require(CallOllama, "systemPrompt", args.SystemPrompt)
		if err != nil {
			return nil, err
		}
		message, err := require(CallOllama, "userMessage", args.UserMessage)
		if err != nil {
			return nil, err
		}
		return relay.CallModel(ctx, url, model, system, message)
	}
}

func fetchRSSFeedHandler(fetcher *feed.Fetcher) Handler {
	return func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
		var args feedArgs
		if err := decodeArgs(FetchRSSFeed, raw, &args); err != nil {
			return nil, err
		}
		url, err := require(FetchRSSFeed, "url", args.URL)
		if err != nil {
			return nil, err
		}
		return fetcher.FetchFeed(ctx, url)
	}
}

func guessLocationHandler(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var args guessArgs
	if err := decodeArgs(GuessLocationFromText, raw, &args); err != nil {
		return nil, err
	}
	text, err := require(GuessLocationFromText, "text", args.Text)
	if err != nil {
		return nil, err
	}
	return geo.GuessLocation(text).Pair(), nil
}

// locateFeedItemsHandler fetches a feed and fills in coordinates for
// every item the feed itself did not locate.
func locateFeedItemsHandler(fetcher *feed.Fetcher) Handler {
	return func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
		var args feedArgs
		if err := decodeArgs(LocateFeedItems, raw, &args); err != nil {
			return nil, err
		}
		url, err := require(LocateFeedItems, "url", args.URL)
		if err != nil {
			return nil, err
		}
		items, err := fetcher.FetchFeed(ctx, url)
		if err != nil {
			return nil, err
		}
		return LocateItems(items), nil
	}
}

// LocateItems guesses a coordinate from title and description for items
// without one. Items that already carry both coordinates are left alone.
func LocateItems(items []feed.Item) []feed.Item {
	for i := range items {
		if items[i].HasLocation() {
			continue
		}
		c := geo.GuessLocation(items[i].Title + " " + PlainText(items[i].Description))
		lat, lng := c.Lat, c.Lng
		items[i].Lat = &lat
		items[i].Lng = &lng
	}
	return items
}

// PlainText drops markup and collapses whitespace. Input that fails to
// parse is returned unchanged.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
