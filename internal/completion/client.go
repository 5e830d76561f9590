package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client submits a prompt to a remote text-generation API and returns the
// generated text. The service is treated as opaque and best-effort: any
// failure surfaces as an error for that request only.
type Client interface {
	Complete(ctx context.Context, req *Request) (string, error)
}

type Request struct {
	Prompt      string
	System      string
	MaxTokens   int
	Temperature float64
}

type openAIClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewOpenAIClient(apiKey, baseURL, model string) Client {
	return &openAIClient{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *openAIClient) Complete(ctx context.Context, req *Request) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	var body chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("malformed completion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if body.Error != nil && body.Error.Message != "" {
			return "", fmt.Errorf("completion API error: %s", body.Error.Message)
		}
		return "", fmt.Errorf("completion API request failed: status %d", resp.StatusCode)
	}

	if len(body.Choices) == 0 {
		return "", fmt.Errorf("no completion generated")
	}

	text := strings.TrimSpace(body.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("no completion generated")
	}

	return text, nil
}
