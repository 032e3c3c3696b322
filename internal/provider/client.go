// Package provider implements the outbound chat-completions client used for
// AI-backed generation. The wire shape is the OpenRouter/OpenAI one: a model,
// a message list, and a choices array in the response.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/readme-maestro/maestro-backend/internal/assembler"
)

const (
	// DefaultTimeout bounds one completion round trip.
	DefaultTimeout = 30 * time.Second

	defaultMaxTokens   = 1400
	defaultTemperature = 0.7
)

type Options struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client is an assembler.Provider backed by an HTTP chat-completions API.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		model:   opts.Model,
		http:    &http.Client{Timeout: opts.Timeout},
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
}

// Complete sends one prompt and returns the completion text. Errors wrap
// assembler.ErrProviderUnavailable or assembler.ErrProviderEmpty so the
// assembler can absorb them into the fallback branch.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	body, _ := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		recordCall(time.Since(start), err)
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		recordCall(duration, err)
		return "", fmt.Errorf("%w: %v", assembler.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		err = fmt.Errorf("%w: status %d", assembler.ErrProviderUnavailable, resp.StatusCode)
		recordCall(duration, err)
		return "", err
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		err = fmt.Errorf("%w: decode: %v", assembler.ErrProviderUnavailable, err)
		recordCall(duration, err)
		return "", err
	}

	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		recordCall(duration, assembler.ErrProviderEmpty)
		return "", assembler.ErrProviderEmpty
	}

	recordCall(duration, nil)
	return out.Choices[0].Message.Content, nil
}
