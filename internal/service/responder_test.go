package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/lock"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository/mocks"
	"github.com/ppopeskul/convoflow/internal/service"
	servicemocks "github.com/ppopeskul/convoflow/internal/service/mocks"
)

type responderMocks struct {
	contacts   *mocks.MockContactRepository
	messages   *mocks.MockMessageRepository
	buffers    *mocks.MockBufferRepository
	outbox     *mocks.MockOutboxRepository
	locker     *servicemocks.MockContactLocker
	settings   *servicemocks.MockSettingsProvider
	completion *servicemocks.MockCompletionClient
	gateway    *servicemocks.MockChatGateway
	dispatcher *servicemocks.MockDispatcher
}

func (m responderMocks) passLock() {
	m.locker.EXPECT().WithLock(gomock.Any(), "contact:5", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

// untilGenerate expects every call up to the completion request for an
// eligible turn.
func (m responderMocks) untilGenerate(bufs []*models.MessageBuffer) {
	m.buffers.EXPECT().ClaimReady(gomock.Any(), fixedNow, 10).Return(bufs, nil)
	m.passLock()
	m.contacts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testContact(), nil)
	m.settings.EXPECT().Resolve(gomock.Any(), "t1").Return(tenantSettings(), nil)
	m.messages.EXPECT().LastAssistantAt(gomock.Any(), int64(5)).Return(time.Time{}, false, nil)
	m.messages.EXPECT().History(gomock.Any(), int64(5), 20).Return([]*models.Message{
		{Role: models.RoleAssistant, Content: "Welcome!"},
	}, nil)
}

func (m responderMocks) expectRequeue(t *testing.T, text string, attempts int, triggerAt time.Time) {
	m.buffers.EXPECT().Requeue(gomock.Any(), gomock.Any(), triggerAt).DoAndReturn(
		func(_ context.Context, buf *models.MessageBuffer, _ time.Time) (*models.MessageBuffer, error) {
			assert.Equal(t, int64(5), buf.ContactID)
			assert.Equal(t, "t1", buf.TenantID)
			assert.Equal(t, text, buf.AggregatedContent)
			assert.Equal(t, attempts, buf.Attempts)
			return buf, nil
		})
}

func buffered(text string) []*models.MessageBuffer {
	return []*models.MessageBuffer{{ContactID: 5, TenantID: "t1", AggregatedContent: text, TriggerAt: fixedNow}}
}

func retried(text string, attempts int) []*models.MessageBuffer {
	bufs := buffered(text)
	bufs[0].Attempts = attempts
	return bufs
}

func responderConfig() *config.BufferConfig {
	return &config.BufferConfig{BatchSize: 10, Concurrency: 2, MaxAttempts: 3, RetryBackoffSeconds: 30}
}

func TestResponder_SweepBuffers(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m responderMocks)
	}{
		{
			name: "eligible turn is answered",
			setup: func(m responderMocks) {
				m.buffers.EXPECT().ClaimReady(gomock.Any(), fixedNow, 10).Return(buffered("how much is it?"), nil)
				m.passLock()
				m.contacts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testContact(), nil)
				m.settings.EXPECT().Resolve(gomock.Any(), "t1").Return(tenantSettings(), nil)
				m.messages.EXPECT().LastAssistantAt(gomock.Any(), int64(5)).Return(fixedNow.Add(-time.Hour), true, nil)
				m.messages.EXPECT().History(gomock.Any(), int64(5), 20).Return([]*models.Message{
					{Role: models.RoleAssistant, Content: "Welcome!"},
					{Role: models.RoleUser, Content: "how much is it?"},
				}, nil)
				m.completion.EXPECT().Generate(gomock.Any(), service.CompletionRequest{
					History:     []models.HistoryTurn{{Role: models.RoleAssistant, Content: "Welcome!"}},
					UserMessage: "how much is it?",
				}).Return("It is 10", nil)
				m.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, out service.OutboundText) (*models.Message, error) {
						assert.Equal(t, "It is 10", out.Text)
						assert.Equal(t, "shop-1", out.Instance)
						assert.NotNil(t, out.Settings)
						return &models.Message{ID: 77}, nil
					})
				m.outbox.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, event *models.OutboxEvent) error {
						assert.Equal(t, service.TopicAIResponseSent, event.Topic)
						assert.JSONEq(t, `{"tenant_id":"t1","contact_id":5,"message_id":77,"user_message":"how much is it?","reply":"It is 10"}`, string(event.Payload))
						return nil
					})
			},
		},
		{
			name: "cooldown suppresses the reply",
			setup: func(m responderMocks) {
				m.buffers.EXPECT().ClaimReady(gomock.Any(), fixedNow, 10).Return(buffered("hello"), nil)
				m.passLock()
				m.contacts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testContact(), nil)
				m.settings.EXPECT().Resolve(gomock.Any(), "t1").Return(tenantSettings(), nil)
				m.messages.EXPECT().LastAssistantAt(gomock.Any(), int64(5)).Return(fixedNow.Add(-30*time.Second), true, nil)
			},
		},
		{
			name: "outside business hours suppresses the reply",
			setup: func(m responderMocks) {
				settings := tenantSettings()
				settings.StartHour, settings.EndHour = 13, 18
				m.buffers.EXPECT().ClaimReady(gomock.Any(), fixedNow, 10).Return(buffered("hello"), nil)
				m.passLock()
				m.contacts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testContact(), nil)
				m.settings.EXPECT().Resolve(gomock.Any(), "t1").Return(settings, nil)
				m.messages.EXPECT().LastAssistantAt(gomock.Any(), int64(5)).Return(time.Time{}, false, nil)
			},
		},
		{
			name: "human request hands off",
			setup: func(m responderMocks) {
				m.buffers.EXPECT().ClaimReady(gomock.Any(), fixedNow, 10).Return(buffered("can I talk to a HUMAN"), nil)
				m.passLock()
				m.contacts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testContact(), nil)
				m.settings.EXPECT().Resolve(gomock.Any(), "t1").Return(tenantSettings(), nil)
				m.messages.EXPECT().LastAssistantAt(gomock.Any(), int64(5)).Return(time.Time{}, false, nil)
				m.contacts.EXPECT().SetHandlingMode(gomock.Any(), int64(5), models.HandlingModeHuman).Return(nil)
				m.outbox.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, event *models.OutboxEvent) error {
						assert.Equal(t, service.TopicHandoffRequested, event.Topic)
						return nil
					})
			},
		},
		{
			name: "manual contact is skipped",
			setup: func(m responderMocks) {
				c := testContact()
				c.HandlingMode = models.HandlingModeManual
				m.buffers.EXPECT().ClaimReady(gomock.Any(), fixedNow, 10).Return(buffered("hello"), nil)
				m.passLock()
				m.contacts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(c, nil)
			},
		},
		{
			name: "generation failure re-buffers the turn",
			setup: func(m responderMocks) {
				m.untilGenerate(buffered("hello"))
				m.completion.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", service.ErrCircuitOpen)
				m.expectRequeue(t, "hello", 1, fixedNow.Add(30*time.Second))
			},
		},
		{
			name: "backoff doubles with each failed attempt",
			setup: func(m responderMocks) {
				m.untilGenerate(retried("hello", 1))
				m.completion.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", context.DeadlineExceeded)
				m.expectRequeue(t, "hello", 2, fixedNow.Add(60*time.Second))
			},
		},
		{
			name: "gateway failure re-buffers the turn",
			setup: func(m responderMocks) {
				m.untilGenerate(buffered("hello"))
				m.completion.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("Hi!", nil)
				m.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway returned 502"))
				m.expectRequeue(t, "hello", 1, fixedNow.Add(30*time.Second))
			},
		},
		{
			name: "daily cap re-buffers the turn",
			setup: func(m responderMocks) {
				m.untilGenerate(buffered("hello"))
				m.completion.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("Hi!", nil)
				m.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, service.ErrDailyCapReached)
				m.expectRequeue(t, "hello", 1, fixedNow.Add(30*time.Second))
			},
		},
		{
			name: "spent attempts publish the turn as failed",
			setup: func(m responderMocks) {
				m.untilGenerate(retried("hello\nanyone?", 2))
				m.completion.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", service.ErrCircuitOpen)
				m.outbox.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, event *models.OutboxEvent) error {
						assert.Equal(t, service.TopicAIResponseFailed, event.Topic)
						assert.Equal(t, "t1", event.TenantID)

						var payload map[string]any
						require.NoError(t, json.Unmarshal(event.Payload, &payload))
						assert.Equal(t, "hello\nanyone?", payload["user_message"])
						assert.EqualValues(t, 5, payload["contact_id"])
						assert.EqualValues(t, 3, payload["attempts"])
						assert.Contains(t, payload["error"], "circuit")
						return nil
					})
			},
		},
		{
			name: "reply sent but not recorded is never retried",
			setup: func(m responderMocks) {
				m.untilGenerate(buffered("hello"))
				m.completion.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("Hi!", nil)
				m.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: db down", service.ErrSentNotRecorded))
			},
		},
		{
			name: "empty history is backfilled from the gateway",
			setup: func(m responderMocks) {
				m.buffers.EXPECT().ClaimReady(gomock.Any(), fixedNow, 10).Return(buffered("hello"), nil)
				m.passLock()
				m.contacts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testContact(), nil)
				m.settings.EXPECT().Resolve(gomock.Any(), "t1").Return(tenantSettings(), nil)
				m.messages.EXPECT().LastAssistantAt(gomock.Any(), int64(5)).Return(time.Time{}, false, nil)
				m.messages.EXPECT().History(gomock.Any(), int64(5), 20).Return([]*models.Message{
					{Role: models.RoleUser, Content: "hello"},
				}, nil)
				m.gateway.EXPECT().FetchHistory(gomock.Any(), "shop-1", "5511999999999", 20).Return([]json.RawMessage{
					json.RawMessage(`{"key":{"id":"1","fromMe":false},"message":{"conversation":"last week"}}`),
					json.RawMessage(`{"key":{"id":"2","fromMe":true},"message":{"extendedTextMessage":{"text":"see you"}}}`),
					json.RawMessage(`{"key":{"id":"3"}}`),
					json.RawMessage(`{"key":{"id":"4","fromMe":false},"message":{"conversation":"hello"}}`),
				}, nil)
				m.completion.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req service.CompletionRequest) (string, error) {
						assert.Equal(t, []models.HistoryTurn{
							{Role: models.RoleUser, Content: "last week"},
							{Role: models.RoleAssistant, Content: "see you"},
						}, req.History)
						return "hi again", nil
					})
				m.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&models.Message{ID: 1}, nil)
				m.outbox.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "busy contact is re-buffered",
			setup: func(m responderMocks) {
				m.buffers.EXPECT().ClaimReady(gomock.Any(), fixedNow, 10).Return(buffered("hello"), nil)
				m.locker.EXPECT().WithLock(gomock.Any(), "contact:5", gomock.Any()).
					Return(fmt.Errorf("%w: contact:5", lock.ErrNotAcquired))
				m.expectRequeue(t, "hello", 0, fixedNow)
			},
		},
		{
			name: "nothing ready",
			setup: func(m responderMocks) {
				m.buffers.EXPECT().ClaimReady(gomock.Any(), fixedNow, 10).Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := mocks.NewMockRepository(ctrl)
			m := responderMocks{
				contacts:   mocks.NewMockContactRepository(ctrl),
				messages:   mocks.NewMockMessageRepository(ctrl),
				buffers:    mocks.NewMockBufferRepository(ctrl),
				outbox:     mocks.NewMockOutboxRepository(ctrl),
				locker:     servicemocks.NewMockContactLocker(ctrl),
				settings:   servicemocks.NewMockSettingsProvider(ctrl),
				completion: servicemocks.NewMockCompletionClient(ctrl),
				gateway:    servicemocks.NewMockChatGateway(ctrl),
				dispatcher: servicemocks.NewMockDispatcher(ctrl),
			}
			repo.EXPECT().Contact().Return(m.contacts).AnyTimes()
			repo.EXPECT().Message().Return(m.messages).AnyTimes()
			repo.EXPECT().Buffer().Return(m.buffers).AnyTimes()
			repo.EXPECT().Outbox().Return(m.outbox).AnyTimes()

			tt.setup(m)

			r := service.NewResponder(responderConfig(), 20, repo, m.locker,
				m.settings, m.completion, m.gateway, m.dispatcher, zap.NewNop(), fixedClock())

			require.NoError(t, r.SweepBuffers(context.Background()))
		})
	}
}

func TestResponder_SweepBuffers_ClaimFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRepository(ctrl)
	buffers := mocks.NewMockBufferRepository(ctrl)
	repo.EXPECT().Buffer().Return(buffers)
	buffers.EXPECT().ClaimReady(gomock.Any(), gomock.Any(), 10).Return(nil, errors.New("db down"))

	r := service.NewResponder(responderConfig(), 20, repo, nil,
		nil, nil, nil, nil, zap.NewNop())

	assert.Error(t, r.SweepBuffers(context.Background()))
}
