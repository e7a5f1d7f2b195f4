package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository/mocks"
	"github.com/ppopeskul/convoflow/internal/service"
	servicemocks "github.com/ppopeskul/convoflow/internal/service/mocks"
)

func body(t *testing.T, raw string) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestResolveContent(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantText string
		wantKind models.MessageKind
	}{
		{"conversation", `{"conversation":"hello"}`, "hello", models.KindText},
		{"extended text", `{"extendedTextMessage":{"text":"quoted"}}`, "quoted", models.KindText},
		{"text wins over image", `{"conversation":"hi","imageMessage":{"caption":"pic"}}`, "hi", models.KindText},
		{"image caption", `{"imageMessage":{"caption":"look","mimetype":"image/jpeg"}}`, "look", models.KindImage},
		{"image without caption", `{"imageMessage":{"mimetype":"image/jpeg"}}`, "[image]", models.KindImage},
		{"audio", `{"audioMessage":{"mimetype":"audio/ogg"}}`, "[audio]", models.KindAudio},
		{"video", `{"videoMessage":{}}`, "[video]", models.KindVideo},
		{"document uses file name", `{"documentMessage":{"fileName":"invoice.pdf"}}`, "invoice.pdf", models.KindDocument},
		{"unsupported kind", `{"stickerMessage":{},"messageContextInfo":{}}`, "[sticker]", models.KindText},
		{"empty body", `{}`, "[unknown]", models.KindText},
		{"only context info", `{"messageContextInfo":{}}`, "[unknown]", models.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := service.ResolveContent(body(t, tt.body))
			assert.Equal(t, tt.wantText, content.Text)
			assert.Equal(t, tt.wantKind, content.Kind)
		})
	}
}

func TestHistoryTurn(t *testing.T) {
	turn, ok := service.HistoryTurn(json.RawMessage(`{"key":{"fromMe":true},"message":{"conversation":"on my way"}}`))
	require.True(t, ok)
	assert.Equal(t, models.HistoryTurn{Role: models.RoleAssistant, Content: "on my way"}, turn)

	turn, ok = service.HistoryTurn(json.RawMessage(`{"key":{},"message":{"imageMessage":{}}}`))
	require.True(t, ok)
	assert.Equal(t, models.HistoryTurn{Role: models.RoleUser, Content: "[image]"}, turn)

	_, ok = service.HistoryTurn(json.RawMessage(`{"key":{}}`))
	assert.False(t, ok)

	_, ok = service.HistoryTurn(json.RawMessage(`nope`))
	assert.False(t, ok)
}

type normalizerMocks struct {
	contacts      *mocks.MockContactRepository
	messages      *mocks.MockMessageRepository
	conversations *mocks.MockConversationRepository
	gateway       *servicemocks.MockChatGateway
	store         *servicemocks.MockObjectStorage
}

func newNormalizerMocks(ctrl *gomock.Controller) (*mocks.MockRepository, normalizerMocks) {
	repo := mocks.NewMockRepository(ctrl)
	m := normalizerMocks{
		contacts:      mocks.NewMockContactRepository(ctrl),
		messages:      mocks.NewMockMessageRepository(ctrl),
		conversations: mocks.NewMockConversationRepository(ctrl),
		gateway:       servicemocks.NewMockChatGateway(ctrl),
		store:         servicemocks.NewMockObjectStorage(ctrl),
	}
	repo.EXPECT().Contact().Return(m.contacts).AnyTimes()
	repo.EXPECT().Message().Return(m.messages).AnyTimes()
	repo.EXPECT().Conversation().Return(m.conversations).AnyTimes()
	return repo, m
}

// echoContact upserts by assigning the stored id.
func echoContact(m normalizerMocks, check func(c *models.Contact)) {
	m.contacts.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Contact) (*models.Contact, error) {
			if check != nil {
				check(c)
			}
			stored := *c
			stored.ID = 5
			return &stored, nil
		})
}

func echoMessage(m normalizerMocks, check func(msg *models.Message)) {
	m.messages.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *models.Message) (*models.Message, error) {
			if check != nil {
				check(msg)
			}
			stored := *msg
			stored.ID = 77
			return &stored, nil
		})
}

const messageTimestamp = 1709553600 // 2024-03-04 12:00 UTC

func TestMessageNormalizer_Normalize_Text(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo, m := newNormalizerMocks(ctrl)

	raw := json.RawMessage(`{"key":{"remoteJid":"5511999999999@s.whatsapp.net","fromMe":false,"id":"ABC"},
		"pushName":"Ana","messageTimestamp":"1709553600","message":{"conversation":"hi there"}}`)
	createdAt := time.Unix(messageTimestamp, 0).UTC()

	echoContact(m, func(c *models.Contact) {
		assert.Equal(t, "t1", c.TenantID)
		assert.Equal(t, "5511999999999", c.Phone)
		assert.Equal(t, "Ana", c.Name)
		assert.Equal(t, "shop-1", c.Instance)
	})
	echoMessage(m, func(msg *models.Message) {
		assert.Equal(t, int64(5), msg.ContactID)
		assert.Equal(t, models.RoleUser, msg.Role)
		assert.Equal(t, models.MessageStatusReceived, msg.Status)
		assert.Equal(t, "hi there", msg.Content)
		assert.Equal(t, "ABC", msg.GatewayMessageID)
		assert.True(t, createdAt.Equal(msg.CreatedAt))
		assert.False(t, msg.MediaURL.Valid)
	})
	m.conversations.EXPECT().Touch(gomock.Any(), "t1", int64(5), "hi there", createdAt, true).Return(nil)

	normalizer := service.NewMessageNormalizer(repo, m.gateway, m.store, 1024, zap.NewNop(), fixedClock())

	in, err := normalizer.Normalize(context.Background(), "t1", "shop-1", raw)
	require.NoError(t, err)
	require.NotNil(t, in)
	assert.Equal(t, "t1", in.TenantID)
	assert.Equal(t, "shop-1", in.Instance)
	assert.Equal(t, int64(5), in.Contact.ID)
	assert.Equal(t, int64(77), in.Message.ID)
}

func TestMessageNormalizer_Normalize_FromMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo, m := newNormalizerMocks(ctrl)

	raw := json.RawMessage(`{"key":{"remoteJid":"5511999999999@s.whatsapp.net","fromMe":true,"id":"OUT1"},
		"pushName":"Shop","message":{"conversation":"thanks"}}`)

	echoContact(m, func(c *models.Contact) {
		assert.Empty(t, c.Name)
	})
	echoMessage(m, func(msg *models.Message) {
		assert.Equal(t, models.RoleAssistant, msg.Role)
		assert.Equal(t, models.MessageStatusSent, msg.Status)
		assert.True(t, fixedNow.Equal(msg.CreatedAt))
	})
	m.conversations.EXPECT().Touch(gomock.Any(), "t1", int64(5), "thanks", fixedNow, false).Return(nil)

	normalizer := service.NewMessageNormalizer(repo, m.gateway, m.store, 1024, zap.NewNop(), fixedClock())

	in, err := normalizer.Normalize(context.Background(), "t1", "shop-1", raw)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAssistant, in.Message.Role)
}

func TestMessageNormalizer_Normalize_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"group chat", `{"key":{"remoteJid":"123-456@g.us","id":"G1"},"message":{"conversation":"hey"}}`, nil},
		{"status broadcast", `{"key":{"remoteJid":"status@broadcast","id":"S1"},"message":{"conversation":"hey"}}`, nil},
		{"missing id", `{"key":{"remoteJid":"5511999999999@s.whatsapp.net"},"message":{"conversation":"hey"}}`, service.ErrMalformedEvent},
		{"not json", `[1,2`, service.ErrMalformedEvent},
		{"bad phone", `{"key":{"remoteJid":"12@s.whatsapp.net","id":"X"},"message":{}}`, service.ErrMalformedEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo, m := newNormalizerMocks(ctrl)

			normalizer := service.NewMessageNormalizer(repo, m.gateway, m.store, 1024, zap.NewNop(), fixedClock())

			in, err := normalizer.Normalize(context.Background(), "t1", "shop-1", json.RawMessage(tt.raw))
			assert.Nil(t, in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMessageNormalizer_Normalize_Media(t *testing.T) {
	raw := json.RawMessage(`{"key":{"remoteJid":"5511999999999@s.whatsapp.net","id":"IMG1"},
		"messageTimestamp":1709553600,"message":{"imageMessage":{"mimetype":"image/jpeg","caption":"receipt"}}}`)
	const wantKey = "tenants/t1/inbox/5511999999999/2024/03/04/images/IMG1.jpg"

	tests := []struct {
		name     string
		withSink bool
		setup    func(m normalizerMocks)
		wantURL  string
	}{
		{
			name:     "stored",
			withSink: true,
			setup: func(m normalizerMocks) {
				m.gateway.EXPECT().DownloadMedia(gomock.Any(), "shop-1", raw).
					Return(&service.MediaBlob{Data: []byte("jpeg-bytes"), MimeType: "image/jpeg"}, nil)
				m.store.EXPECT().Put(gomock.Any(), wantKey, []byte("jpeg-bytes"), "image/jpeg").
					Return("https://cdn.example.com/"+wantKey, nil)
			},
			wantURL: "https://cdn.example.com/" + wantKey,
		},
		{
			name:     "too large",
			withSink: true,
			setup: func(m normalizerMocks) {
				m.gateway.EXPECT().DownloadMedia(gomock.Any(), "shop-1", raw).
					Return(&service.MediaBlob{Data: make([]byte, 2048), MimeType: "image/jpeg"}, nil)
			},
		},
		{
			name:     "download fails",
			withSink: true,
			setup: func(m normalizerMocks) {
				m.gateway.EXPECT().DownloadMedia(gomock.Any(), "shop-1", raw).Return(nil, errors.New("gateway down"))
			},
		},
		{
			name:     "upload fails",
			withSink: true,
			setup: func(m normalizerMocks) {
				m.gateway.EXPECT().DownloadMedia(gomock.Any(), "shop-1", raw).
					Return(&service.MediaBlob{Data: []byte("jpeg-bytes")}, nil)
				m.store.EXPECT().Put(gomock.Any(), wantKey, []byte("jpeg-bytes"), "image/jpeg").
					Return("", errors.New("bucket missing"))
			},
		},
		{
			name: "no store configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo, m := newNormalizerMocks(ctrl)

			echoContact(m, nil)
			echoMessage(m, func(msg *models.Message) {
				assert.Equal(t, models.KindImage, msg.Kind)
				assert.Equal(t, "receipt", msg.Content)
				assert.Equal(t, tt.wantURL != "", msg.MediaURL.Valid)
				assert.Equal(t, tt.wantURL, msg.MediaURL.String)
			})
			m.conversations.EXPECT().Touch(gomock.Any(), "t1", int64(5), "receipt", gomock.Any(), true).Return(nil)

			if tt.setup != nil {
				tt.setup(m)
			}

			var store service.ObjectStorage
			if tt.withSink {
				store = m.store
			}
			normalizer := service.NewMessageNormalizer(repo, m.gateway, store, 1024, zap.NewNop(), fixedClock())

			in, err := normalizer.Normalize(context.Background(), "t1", "shop-1", raw)
			require.NoError(t, err)
			require.NotNil(t, in)
		})
	}
}

func TestMessageNormalizer_Normalize_PersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo, m := newNormalizerMocks(ctrl)

	echoContact(m, nil)
	m.messages.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	normalizer := service.NewMessageNormalizer(repo, m.gateway, nil, 1024, zap.NewNop(), fixedClock())

	_, err := normalizer.Normalize(context.Background(), "t1", "shop-1",
		json.RawMessage(`{"key":{"remoteJid":"5511999999999@s.whatsapp.net","id":"A"},"message":{"conversation":"x"}}`))
	assert.ErrorContains(t, err, "failed to persist message")
}
