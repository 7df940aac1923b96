package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// GeneratePath is appended verbatim to the endpoint URL
const GeneratePath = "/api/generate"

// Client relays single prompts to an Ollama-style completion server
type Client struct {
	httpClient *http.Client
}

// NewClient creates a relay client. A nil httpClient gets a plain
// http.Client with no timeout of its own.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient}
}

// BuildPrompt frames the conversation the way the model expects it
func BuildPrompt(systemPrompt, userMessage string) string {
	return systemPrompt + "\n\nUser: " + userMessage + "\n\nAssistant:"
}

// CallModel posts one non-streaming generate request and returns the
// completion text untouched.
func (c *Client) CallModel(ctx context.Context, endpointURL, model, systemPrompt, userMessage string) (string, error) {
	apiURL := endpointURL + GeneratePath

	jsonData, err := json.Marshal(GenerateRequest{
		Model:  model,
		Prompt: BuildPrompt(systemPrompt, userMessage),
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &ConnectionError{URL: apiURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[LLM] Request to %s failed after %s: %v", apiURL, time.Since(startTime), err)
		return "", &ConnectionError{URL: apiURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[LLM] %s returned status %d", apiURL, resp.StatusCode)
		return "", &RelayError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ParseError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &ParseError{Err: err}
	}
	if result.Response == nil {
		return "", &ParseError{Err: errors.New("missing response field")}
	}

	log.Printf("[LLM] Completion from %s (model %s) in %s", endpointURL, model, time.Since(startTime))
	return *result.Response, nil
}
