package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"katechon/internal/feed"
	"katechon/internal/llm"
)

// Command names the host shell invokes
const (
	CallOllama            = "call_ollama"
	FetchRSSFeed          = "fetch_rss_feed"
	GuessLocationFromText = "guess_location_from_text"
	LocateFeedItems       = "locate_feed_items"
)

// Handler runs one command against its raw JSON arguments
type Handler func(ctx context.Context, args json.RawMessage) (interface{}, error)

// UnknownCommandError is returned for names nothing is registered under
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// ArgumentError means the arguments did not decode or a field is missing
type ArgumentError struct {
	Command string
	Err     error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Command, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// Registry maps command names to handlers. It is filled once at
// construction and only read afterwards.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry wires the built-in commands to the given relay and fetcher
func NewRegistry(relay *llm.Client, fetcher *feed.Fetcher) *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	r.handlers[CallOllama] = callOllamaHandler(relay)
	r.handlers[FetchRSSFeed] = fetchRSSFeedHandler(fetcher)
	r.handlers[GuessLocationFromText] = guessLocationHandler
	r.handlers[LocateFeedItems] = locateFeedItemsHandler(fetcher)
	return r
}

// Names lists registered commands, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named command. Every failure comes back as an error
// whose message is meant to be shown to the user as-is.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}

	start := time.Now()
	result, err := h(ctx, args)
	if err != nil {
		log.Printf("[Commands] %s failed after %s: %v", name, time.Since(start), err)
		return nil, err
	}
	log.Printf("[Commands] %s completed in %s", name, time.Since(start))
	return result, nil
}

func decodeArgs(command string, raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &ArgumentError{Command: command, Err: err}
	}
	return nil
}

func require(command, field string, v *string) (string, error) {
	if v == nil {
		return "", &ArgumentError{Command: command, Err: fmt.Errorf("missing field %q", field)}
	}
	return *v, nil
}
