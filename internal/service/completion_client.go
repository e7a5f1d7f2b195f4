package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/models"
)

var ErrEmptyCompletion = errors.New("completion returned no content")

type completionClient struct {
	http    *resty.Client
	model   string
	breaker *CircuitBreaker
	logger  *zap.Logger
}

// NewCompletionClient calls an OpenAI compatible chat completions endpoint.
func NewCompletionClient(cfg *config.CompletionConfig, breaker *CircuitBreaker, logger *zap.Logger) CompletionClient {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(config.Seconds(cfg.Timeout))

	return &completionClient{
		http:    client,
		model:   cfg.Model,
		breaker: breaker,
		logger:  logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *completionClient) Generate(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]chatMessage, 0, len(req.History)+2)
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: string(models.RoleSystem), Content: req.SystemPrompt})
	}
	for _, turn := range req.History {
		messages = append(messages, chatMessage{Role: string(turn.Role), Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: string(models.RoleUser), Content: req.UserMessage})

	var out chatCompletionResponse
	err := c.breaker.Execute(ctx, func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(map[string]any{
				"model":    c.model,
				"messages": messages,
			}).
			SetResult(&out).
			Post("/v1/chat/completions")
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		if resp.IsError() {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode())
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(out.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
