// Package ai wraps the OpenAI-compatible chat-completion API behind a
// small prompt-in, text-out surface. The provider endpoint and model
// are configurable, so any compatible gateway works.
package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/able-wong/firekit/internal/config"
	"github.com/able-wong/firekit/internal/logger"
)

// ErrCompletionProvider wraps every failure reported by the completion
// provider, so the handler layer can map them to one upstream-failure
// status.
var ErrCompletionProvider = errors.New("completion provider error")

// Completer is a chat-completion client for a single configured model.
type Completer struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// NewCompleter builds a Completer from cfg. The API key is required;
// BaseURL is optional and overrides the provider default, e.g. to point
// at a compatible self-hosted gateway.
func NewCompleter(cfg config.AI, log *logger.Logger) (*Completer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("empty completion API key")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Completer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: log,
	}, nil
}

// Model returns the configured model name.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends prompt as a single user message and returns the full
// completion text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug().
		Fields(logger.Normalize(map[string]any{"model": c.model, "promptChars": len(prompt)})).
		Msg("requesting completion")

	resp, err := c.client.CreateChatCompletion(ctx, c.request(prompt))
	if err != nil {
		return "", parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response: %w", ErrCompletionProvider)
	}

	return resp.Choices[0].Message.Content, nil
}

// Stream sends prompt and invokes fn once per content delta until the
// provider finishes. An error from fn aborts the stream and is returned
// unchanged.
func (c *Completer) Stream(ctx context.Context, prompt string, fn func(delta string) error) error {
	c.logger.Debug().
		Fields(logger.Normalize(map[string]any{"model": c.model, "promptChars": len(prompt)})).
		Msg("requesting completion stream")

	req := c.request(prompt)
	req.Stream = true

	stream, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return parseAPIError(err)
	}
	defer func() { _ = stream.Close() }()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return parseAPIError(err)
		}

		for _, choice := range resp.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			if err := fn(choice.Delta.Content); err != nil {
				return err
			}
		}
	}
}

func (c *Completer) request(prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
}

// parseAPIError extracts status and message from provider errors,
// wrapping them all with [ErrCompletionProvider].
func parseAPIError(err error) error {
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("completion API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), ErrCompletionProvider)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("completion API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, ErrCompletionProvider)
	}

	return fmt.Errorf("completion request failed: %v: %w", err, ErrCompletionProvider)
}
