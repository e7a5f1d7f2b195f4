package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type webhookCaller struct {
	http *resty.Client
}

// NewWebhookCaller posts workflow payloads to operator supplied URLs.
func NewWebhookCaller() WebhookCaller {
	return &webhookCaller{
		http: resty.New().SetHeader("Content-Type", "application/json"),
	}
}

// Call returns the decoded response object. A non-object body is wrapped under "body".
func (w *webhookCaller) Call(ctx context.Context, url string, payload any, timeout time.Duration) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := w.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("failed to call webhook: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("webhook returned status %d", resp.StatusCode())
	}

	body := resp.Body()
	if len(body) == 0 {
		return map[string]any{}, nil
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return map[string]any{"body": string(body)}, nil
	}

	return out, nil
}
