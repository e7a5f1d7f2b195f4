package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
	"github.com/ppopeskul/convoflow/internal/sanitize"
	"github.com/ppopeskul/convoflow/internal/storage"
)

const maxContentLen = 4096

type messageNormalizer struct {
	repo          repository.Repository
	gateway       ChatGateway
	store         ObjectStorage
	maxMediaBytes int64
	logger        *zap.Logger
	opts          options
}

// NewMessageNormalizer builds the normalizer. A nil store disables media persistence.
func NewMessageNormalizer(
	repo repository.Repository,
	gateway ChatGateway,
	store ObjectStorage,
	maxMediaBytes int64,
	logger *zap.Logger,
	opts ...Option,
) MessageNormalizer {
	return &messageNormalizer{
		repo:          repo,
		gateway:       gateway,
		store:         store,
		maxMediaBytes: maxMediaBytes,
		logger:        logger.With(zap.String("component", "normalizer")),
		opts:          buildOptions(opts),
	}
}

type gatewayMessage struct {
	Key struct {
		RemoteJID string `json:"remoteJid"`
		FromMe    bool   `json:"fromMe"`
		ID        string `json:"id"`
	} `json:"key"`
	PushName         string                     `json:"pushName"`
	MessageTimestamp json.RawMessage            `json:"messageTimestamp"`
	Message          map[string]json.RawMessage `json:"message"`
}

type mediaContent struct {
	Caption  string `json:"caption"`
	MimeType string `json:"mimetype"`
	FileName string `json:"fileName"`
}

// Content is the text and kind resolved from a gateway message body.
type Content struct {
	Text     string
	Kind     models.MessageKind
	MimeType string
	FileName string
}

var mediaKinds = []struct {
	key  string
	kind models.MessageKind
}{
	{"imageMessage", models.KindImage},
	{"audioMessage", models.KindAudio},
	{"videoMessage", models.KindVideo},
	{"documentMessage", models.KindDocument},
}

var ignoredKeys = map[string]bool{
	"messageContextInfo":           true,
	"senderKeyDistributionMessage": true,
}

// ResolveContent checks the body in priority order: plain text, extended
// text, image, audio, video, document. Anything else becomes a placeholder
// labelled by its kind.
func ResolveContent(body map[string]json.RawMessage) Content {
	if raw, ok := body["conversation"]; ok {
		var text string
		if json.Unmarshal(raw, &text) == nil && text != "" {
			return Content{Text: text, Kind: models.KindText}
		}
	}

	if raw, ok := body["extendedTextMessage"]; ok {
		var ext struct {
			Text string `json:"text"`
		}
		if json.Unmarshal(raw, &ext) == nil && ext.Text != "" {
			return Content{Text: ext.Text, Kind: models.KindText}
		}
	}

	for _, m := range mediaKinds {
		raw, ok := body[m.key]
		if !ok {
			continue
		}
		var media mediaContent
		_ = json.Unmarshal(raw, &media)

		text := media.Caption
		if text == "" && m.kind == models.KindDocument {
			text = media.FileName
		}
		if text == "" {
			text = "[" + string(m.kind) + "]"
		}
		return Content{Text: text, Kind: m.kind, MimeType: media.MimeType, FileName: media.FileName}
	}

	keys := make([]string, 0, len(body))
	for k := range body {
		if !ignoredKeys[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return Content{Text: "[unknown]", Kind: models.KindText}
	}
	sort.Strings(keys)
	return Content{Text: "[" + strings.TrimSuffix(keys[0], "Message") + "]", Kind: models.KindText}
}

// HistoryTurn converts a raw gateway message into a completion history turn.
func HistoryTurn(raw json.RawMessage) (models.HistoryTurn, bool) {
	var msg gatewayMessage
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Message == nil {
		return models.HistoryTurn{}, false
	}

	role := models.RoleUser
	if msg.Key.FromMe {
		role = models.RoleAssistant
	}
	return models.HistoryTurn{Role: role, Content: ResolveContent(msg.Message).Text}, true
}

// Normalize persists one gateway message and its contact. Group and broadcast
// chats return a nil Inbound without error.
func (n *messageNormalizer) Normalize(ctx context.Context, tenantID string, instance string, raw json.RawMessage) (*Inbound, error) {
	var msg gatewayMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if msg.Key.ID == "" {
		return nil, fmt.Errorf("%w: message without id", ErrMalformedEvent)
	}

	phone, err := sanitize.NormalizePhone(msg.Key.RemoteJID)
	if err != nil {
		if errors.Is(err, sanitize.ErrNotDirectChat) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	contact := &models.Contact{
		TenantID: tenantID,
		Phone:    phone,
		Instance: instance,
	}
	if !msg.Key.FromMe {
		contact.Name = sanitize.Truncate(msg.PushName, 255)
	}
	contact, err = n.repo.Contact().Upsert(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert contact: %w", err)
	}

	content := ResolveContent(msg.Message)
	createdAt := parseTimestamp(msg.MessageTimestamp, n.opts.now())

	message := &models.Message{
		ContactID:        contact.ID,
		TenantID:         tenantID,
		Role:             models.RoleUser,
		Content:          sanitize.Truncate(content.Text, maxContentLen),
		Kind:             content.Kind,
		GatewayMessageID: msg.Key.ID,
		Status:           models.MessageStatusReceived,
		RawPayload:       raw,
		CreatedAt:        createdAt,
	}
	if msg.Key.FromMe {
		message.Role = models.RoleAssistant
		message.Status = models.MessageStatusSent
	}

	if content.Kind.IsMedia() {
		if url, ok := n.persistMedia(ctx, tenantID, instance, phone, &msg, content, raw, createdAt); ok {
			message.MediaURL = sql.NullString{String: url, Valid: true}
		}
	}

	message, err = n.repo.Message().Upsert(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	if err := n.repo.Conversation().Touch(ctx, tenantID, contact.ID, message.Content, createdAt, !msg.Key.FromMe); err != nil {
		return nil, fmt.Errorf("failed to touch conversation: %w", err)
	}

	return &Inbound{
		TenantID: tenantID,
		Instance: instance,
		Contact:  contact,
		Message:  message,
	}, nil
}

// persistMedia stores the attachment and returns its public URL. Failures are
// logged and reported as !ok; the message is still stored.
func (n *messageNormalizer) persistMedia(
	ctx context.Context,
	tenantID, instance, phone string,
	msg *gatewayMessage,
	content Content,
	raw json.RawMessage,
	at time.Time,
) (string, bool) {
	if n.store == nil {
		return "", false
	}

	fields := []zap.Field{
		zap.String("tenant_id", tenantID),
		zap.String("gateway_message_id", msg.Key.ID),
		zap.String("kind", string(content.Kind)),
	}

	blob, err := n.gateway.DownloadMedia(ctx, instance, raw)
	if err != nil {
		n.logger.Warn("Failed to download media", append(fields, zap.Error(err))...)
		return "", false
	}
	if n.maxMediaBytes > 0 && int64(len(blob.Data)) > n.maxMediaBytes {
		n.logger.Warn("Failed to persist media", append(fields, zap.Error(ErrMediaTooLarge), zap.Int("bytes", len(blob.Data)))...)
		return "", false
	}

	mimeType := blob.MimeType
	if mimeType == "" {
		mimeType = content.MimeType
	}

	key := storage.ObjectKey(tenantID, !msg.Key.FromMe, phone, msg.Key.ID, mimeType, at)
	url, err := n.store.Put(ctx, key, blob.Data, mimeType)
	if err != nil {
		n.logger.Warn("Failed to store media", append(fields, zap.Error(err))...)
		return "", false
	}

	return url, true
}

// parseTimestamp reads unix seconds given as a number or a numeric string.
func parseTimestamp(raw json.RawMessage, fallback time.Time) time.Time {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return fallback
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Unix(secs, 0).UTC()
}
