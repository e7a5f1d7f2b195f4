package service_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func newGateway(url string) service.ChatGateway {
	return service.NewGatewayClient(
		&config.GatewayConfig{URL: url, APIKey: "secret", Timeout: 5},
		service.NewCircuitBreaker("gateway", breakerConfig(), zap.NewNop()),
		zap.NewNop(),
	)
}

func TestGatewayClient_SendText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/message/sendText/shop-1", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		body := decodeBody(t, r)
		assert.Equal(t, "5511999999999", body["number"])
		assert.Equal(t, "hello", body["text"])
		writeJSON(w, http.StatusCreated, `{"key":{"id":"OUT123"}}`)
	}))
	defer server.Close()

	id, err := newGateway(server.URL).SendText(context.Background(), "shop-1", "5511999999999", "hello")
	require.NoError(t, err)
	assert.Equal(t, "OUT123", id)
}

func TestGatewayClient_SendMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/message/sendMedia/shop-1", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "image", body["mediatype"])
		assert.Equal(t, "https://cdn.example.com/a.jpg", body["media"])
		writeJSON(w, http.StatusOK, `{"key":{"id":"MEDIA1"}}`)
	}))
	defer server.Close()

	id, err := newGateway(server.URL).SendMedia(context.Background(), "shop-1", "5511999999999", service.OutboundMedia{
		Kind:     models.KindImage,
		MimeType: "image/jpeg",
		URL:      "https://cdn.example.com/a.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "MEDIA1", id)
}

func TestGatewayClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, `{"error":"instance offline"}`)
	}))
	defer server.Close()

	_, err := newGateway(server.URL).SendText(context.Background(), "shop-1", "5511999999999", "hello")
	assert.ErrorContains(t, err, "unexpected status code: 502")
}

func TestGatewayClient_FetchHistory(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"bare array", `[{"key":{"id":"1"}},{"key":{"id":"2"}}]`},
		{"paginated records", `{"messages":{"total":2,"records":[{"key":{"id":"1"}},{"key":{"id":"2"}}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/chat/findMessages/shop-1", r.URL.Path)
				body := decodeBody(t, r)
				assert.Equal(t, float64(20), body["limit"])
				writeJSON(w, http.StatusOK, tt.response)
			}))
			defer server.Close()

			records, err := newGateway(server.URL).FetchHistory(context.Background(), "shop-1", "5511999999999", 20)
			require.NoError(t, err)
			assert.Len(t, records, 2)
		})
	}
}

func TestGatewayClient_DownloadMedia(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/getBase64FromMediaMessage/shop-1", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"base64":"`+encoded+`","mimetype":"image/jpeg"}`)
	}))
	defer server.Close()

	blob, err := newGateway(server.URL).DownloadMedia(context.Background(), "shop-1", json.RawMessage(`{"key":{"id":"IMG1"}}`))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), blob.Data)
	assert.Equal(t, "image/jpeg", blob.MimeType)
}

func TestCompletionClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-test", req.Model)
		require.Len(t, req.Messages, 4)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "assistant", req.Messages[2].Role)
		assert.Equal(t, "user", req.Messages[3].Role)
		assert.Equal(t, "price?", req.Messages[3].Content)

		writeJSON(w, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"  It is 10.  "}}]}`)
	}))
	defer server.Close()

	client := service.NewCompletionClient(
		&config.CompletionConfig{URL: server.URL, APIKey: "key", Model: "gpt-test", Timeout: 5},
		service.NewCircuitBreaker("completion", breakerConfig(), zap.NewNop()),
		zap.NewNop(),
	)

	reply, err := client.Generate(context.Background(), service.CompletionRequest{
		SystemPrompt: "You sell shoes.",
		History: []models.HistoryTurn{
			{Role: models.RoleUser, Content: "hi"},
			{Role: models.RoleAssistant, Content: "hello"},
		},
		UserMessage: "price?",
	})
	require.NoError(t, err)
	assert.Equal(t, "It is 10.", reply)
}

func TestCompletionClient_EmptyReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"choices":[]}`)
	}))
	defer server.Close()

	client := service.NewCompletionClient(
		&config.CompletionConfig{URL: server.URL, Model: "m", Timeout: 5},
		service.NewCircuitBreaker("completion", breakerConfig(), zap.NewNop()),
		zap.NewNop(),
	)

	_, err := client.Generate(context.Background(), service.CompletionRequest{UserMessage: "hi"})
	assert.ErrorIs(t, err, service.ErrEmptyCompletion)
}

func TestWebhookCaller_Call(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected map[string]any
		wantErr  bool
	}{
		{"object", http.StatusOK, `{"tier":"gold"}`, map[string]any{"tier": "gold"}, false},
		{"plain text", http.StatusOK, `accepted`, map[string]any{"body": "accepted"}, false},
		{"empty", http.StatusNoContent, ``, map[string]any{}, false},
		{"server error", http.StatusInternalServerError, `{}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body := decodeBody(t, r)
				assert.Equal(t, "hi", body["message"])
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			out, err := service.NewWebhookCaller().Call(context.Background(), server.URL, map[string]any{"message": "hi"}, 2*time.Second)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestWebhookCaller_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := service.NewWebhookCaller().Call(context.Background(), server.URL, map[string]any{"message": "hi"}, 50*time.Millisecond)
	assert.ErrorContains(t, err, "failed to call webhook")
}
