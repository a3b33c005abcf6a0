package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Generator produces raw flashcard text for a topic. Implemented by
// *Client; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, topic string) (string, error)
}

// Ensure Client implements Generator at compile time.
var _ Generator = (*Client)(nil)

// Client talks to an OpenAI-compatible chat completions API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	apiKey    string
	model     string
	userAgent string
}

const (
	defaultModel     = "gpt-4o-mini"
	defaultUserAgent = "cram/0.1"
	requestTimeout   = 90 * time.Second
)

// NewClient builds a Client for the given endpoint. An empty model
// falls back to the default.
func NewClient(endpoint, apiKey, model string) (*Client, error) {
	base, err := parseBaseURL(endpoint)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		apiKey:    apiKey,
		model:     model,
		userAgent: defaultUserAgent,
	}, nil
}

// Generate asks the model for flashcard lines on the given topic and
// returns the raw response text. The text may be empty; deciding
// whether it parses into any cards is the caller's concern.
func (c *Client) Generate(ctx context.Context, topic string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: buildPrompt(topic)},
		},
	}

	var resp chatResponse
	if err := c.do(ctx, "/v1/chat/completions", payload, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// buildPrompt produces the instruction sent to the model. One card per
// line keeps the response trivially parseable.
func buildPrompt(topic string) string {
	return fmt.Sprintf(
		"Generate 10 flashcards about %q. "+
			"Respond with one flashcard per line in the exact format \"term: definition\". "+
			"No numbering, no extra commentary.",
		strings.TrimSpace(topic),
	)
}

func (c *Client) do(ctx context.Context, path string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError extracts the provider's human-readable message when one is
// present; the message is surfaced to the user verbatim.
func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var payload errorResponse
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error.Message != "" {
		return fmt.Errorf("%s", payload.Error.Message)
	}
	return fmt.Errorf("api returned status %d", resp.StatusCode)
}

func parseBaseURL(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("endpoint is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
