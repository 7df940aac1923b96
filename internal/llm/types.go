package llm

import "fmt"

// GenerateRequest is the body posted to /api/generate
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse only carries the field we return. Response is a pointer
// so a body without it can be told apart from an empty completion.
type generateResponse struct {
	Response *string `json:"response"`
}

// ConnectionError is a transport failure (refused, DNS, timeout)
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: failed to connect to completion API at %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// RelayError is a non-2xx reply from the completion API
type RelayError struct {
	StatusCode int
	Status     string
}

func (e *RelayError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	return fmt.Sprintf("relay error: completion API returned status %s", status)
}

// ParseError means the reply body was not usable JSON
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: failed to parse completion response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
