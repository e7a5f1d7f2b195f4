package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
)

type gatewayClient struct {
	http    *resty.Client
	breaker *CircuitBreaker
	logger  *zap.Logger
}

// NewGatewayClient talks to the chat gateway REST API. Every call goes through breaker.
func NewGatewayClient(cfg *config.GatewayConfig, breaker *CircuitBreaker, logger *zap.Logger) ChatGateway {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetHeader("apikey", cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(config.Seconds(cfg.Timeout))

	return &gatewayClient{
		http:    client,
		breaker: breaker,
		logger:  logger,
	}
}

type gatewaySendResponse struct {
	Key struct {
		ID string `json:"id"`
	} `json:"key"`
}

func (c *gatewayClient) SendText(ctx context.Context, instance string, phone string, text string) (string, error) {
	body := map[string]any{
		"number": phone,
		"text":   text,
	}

	var out gatewaySendResponse
	if err := c.post(ctx, "/message/sendText/"+url.PathEscape(instance), body, &out); err != nil {
		return "", fmt.Errorf("failed to send text: %w", err)
	}

	return out.Key.ID, nil
}

func (c *gatewayClient) SendMedia(ctx context.Context, instance string, phone string, media OutboundMedia) (string, error) {
	body := map[string]any{
		"number":    phone,
		"mediatype": media.Kind,
		"mimetype":  media.MimeType,
		"media":     media.URL,
		"caption":   media.Caption,
		"fileName":  media.FileName,
	}

	var out gatewaySendResponse
	if err := c.post(ctx, "/message/sendMedia/"+url.PathEscape(instance), body, &out); err != nil {
		return "", fmt.Errorf("failed to send media: %w", err)
	}

	return out.Key.ID, nil
}

// FetchHistory returns the most recent raw messages exchanged with phone.
func (c *gatewayClient) FetchHistory(ctx context.Context, instance string, phone string, limit int) ([]json.RawMessage, error) {
	body := map[string]any{
		"where": map[string]any{
			"key": map[string]any{"remoteJid": phone + "@s.whatsapp.net"},
		},
		"limit": limit,
	}

	var raw json.RawMessage
	if err := c.post(ctx, "/chat/findMessages/"+url.PathEscape(instance), body, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	return historyRecords(raw)
}

func historyRecords(raw json.RawMessage) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Messages struct {
			Records []json.RawMessage `json:"records"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return wrapped.Messages.Records, nil
}

func (c *gatewayClient) DownloadMedia(ctx context.Context, instance string, message json.RawMessage) (*MediaBlob, error) {
	body := map[string]any{
		"message": message,
	}

	var out struct {
		Base64   string `json:"base64"`
		MimeType string `json:"mimetype"`
	}
	if err := c.post(ctx, "/chat/getBase64FromMediaMessage/"+url.PathEscape(instance), body, &out); err != nil {
		return nil, fmt.Errorf("failed to download media: %w", err)
	}

	data, err := base64.StdEncoding.DecodeString(out.Base64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode media: %w", err)
	}

	return &MediaBlob{Data: data, MimeType: out.MimeType}, nil
}

func (c *gatewayClient) post(ctx context.Context, path string, body any, result any) error {
	return c.breaker.Execute(ctx, func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(body).
			SetResult(result).
			Post(path)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		if resp.IsError() {
			c.logger.Warn("Gateway returned an error",
				zap.String("path", path),
				zap.Int("status_code", resp.StatusCode()),
			)
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode())
		}
		return nil
	})
}
