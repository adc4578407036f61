// Package llm provides OpenAI-compatible LLM client.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrorKind classifies upstream AI failures for the HTTP layer.
type ErrorKind int

const (
	// KindUpstream covers any remote failure without special handling.
	KindUpstream ErrorKind = iota
	// KindQuota means the account ran out of credits or hit its rate limit.
	KindQuota
)

// Error is the classified error returned by Complete.
type Error struct {
	Kind  ErrorKind
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm completion: %v", e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

// IsQuota reports whether err is a quota/billing failure.
func IsQuota(err error) bool {
	var lerr *Error
	return errors.As(err, &lerr) && lerr.Kind == KindQuota
}

// Client is a wrapper around go-openai with specific configurations.
type Client struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

// Config holds the configuration for the LLM client.
type Config struct {
	BaseURL     string
	Model       string
	APIKey      string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// NewClient creates a new LLM client with the provided configuration.
func NewClient(cfg Config) *Client {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &Client{
		client:      openai.NewClientWithConfig(config),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

// Complete sends a single-turn chat completion and returns the reply text.
// An empty reply is not an error; the caller decides how to fall back.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

// classify maps provider errors to a closed kind instead of matching on
// error message text.
func classify(err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return &Error{Kind: KindQuota, cause: err}
		}
		if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
			return &Error{Kind: KindQuota, cause: err}
		}
	}
	return &Error{Kind: KindUpstream, cause: err}
}
