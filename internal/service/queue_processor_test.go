package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
	"github.com/ppopeskul/convoflow/internal/repository/mocks"
	"github.com/ppopeskul/convoflow/internal/service"
	servicemocks "github.com/ppopeskul/convoflow/internal/service/mocks"
)

var fixedNow = time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

func fixedClock() service.Option {
	return service.WithClock(func() time.Time { return fixedNow })
}

func queueConfig() *config.QueueConfig {
	return &config.QueueConfig{MaxAttempts: 5, BatchSize: 10, Concurrency: 2, StaleAfterSeconds: 300}
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		attempts int
		expected time.Duration
	}{
		{attempts: -1, expected: time.Minute},
		{attempts: 0, expected: time.Minute},
		{attempts: 1, expected: 2 * time.Minute},
		{attempts: 3, expected: 8 * time.Minute},
		{attempts: 10, expected: 1024 * time.Minute},
		{attempts: 11, expected: 24 * time.Hour},
		{attempts: 64, expected: 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempts_%d", tt.attempts), func(t *testing.T) {
			assert.Equal(t, tt.expected, service.RetryDelay(tt.attempts))
		})
	}

	prev := time.Duration(0)
	for i := 0; i < 20; i++ {
		d := service.RetryDelay(i)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestQueueProcessor_Process(t *testing.T) {
	handleErr := errors.New("gateway down")

	tests := []struct {
		name       string
		setupMocks func(queue *mocks.MockQueueRepository, handler *servicemocks.MockEventHandler)
		expected   service.ProcessOutcome
		wantErr    bool
	}{
		{
			name: "handler succeeds",
			setupMocks: func(queue *mocks.MockQueueRepository, handler *servicemocks.MockEventHandler) {
				record := &models.QueueRecord{ID: 1, EventKind: models.EventMessagesUpsert}
				queue.EXPECT().Claim(gomock.Any(), int64(1), fixedNow).Return(record, nil)
				handler.EXPECT().Handle(gomock.Any(), record).Return(nil)
				queue.EXPECT().MarkCompleted(gomock.Any(), int64(1), fixedNow).Return(nil)
			},
			expected: service.OutcomeOK,
		},
		{
			name: "first failure schedules retry one minute out",
			setupMocks: func(queue *mocks.MockQueueRepository, handler *servicemocks.MockEventHandler) {
				record := &models.QueueRecord{ID: 1, EventKind: models.EventMessagesUpsert}
				queue.EXPECT().Claim(gomock.Any(), int64(1), fixedNow).Return(record, nil)
				handler.EXPECT().Handle(gomock.Any(), record).Return(handleErr)
				queue.EXPECT().ScheduleRetry(gomock.Any(), int64(1), 1, fixedNow.Add(time.Minute),
					models.ErrorEntry{Error: "gateway down", Time: fixedNow}).Return(nil)
			},
			expected: service.OutcomeRetryScheduled,
		},
		{
			name: "fourth failure backs off eight minutes",
			setupMocks: func(queue *mocks.MockQueueRepository, handler *servicemocks.MockEventHandler) {
				record := &models.QueueRecord{ID: 1, Attempts: 3, EventKind: models.EventContactsUpsert}
				queue.EXPECT().Claim(gomock.Any(), int64(1), fixedNow).Return(record, nil)
				handler.EXPECT().Handle(gomock.Any(), record).Return(handleErr)
				queue.EXPECT().ScheduleRetry(gomock.Any(), int64(1), 4, fixedNow.Add(8*time.Minute), gomock.Any()).Return(nil)
			},
			expected: service.OutcomeRetryScheduled,
		},
		{
			name: "fifth failure dead-letters",
			setupMocks: func(queue *mocks.MockQueueRepository, handler *servicemocks.MockEventHandler) {
				record := &models.QueueRecord{ID: 1, Attempts: 4, EventKind: models.EventMessagesUpsert}
				queue.EXPECT().Claim(gomock.Any(), int64(1), fixedNow).Return(record, nil)
				handler.EXPECT().Handle(gomock.Any(), record).Return(handleErr)
				queue.EXPECT().MarkDead(gomock.Any(), int64(1), 5, models.ErrorEntry{Error: "gateway down", Time: fixedNow}).
					Return(&models.DeadLetterEntry{ID: 7, OriginalRecordID: 1}, nil)
			},
			expected: service.OutcomeDeadLettered,
		},
		{
			name: "record not pending is skipped",
			setupMocks: func(queue *mocks.MockQueueRepository, handler *servicemocks.MockEventHandler) {
				queue.EXPECT().Claim(gomock.Any(), int64(1), fixedNow).Return(nil, repository.ErrConflict)
			},
			expected: service.OutcomeSkipped,
		},
		{
			name: "unknown record is skipped",
			setupMocks: func(queue *mocks.MockQueueRepository, handler *servicemocks.MockEventHandler) {
				queue.EXPECT().Claim(gomock.Any(), int64(1), fixedNow).Return(nil, repository.ErrNotFound)
			},
			expected: service.OutcomeSkipped,
		},
		{
			name: "claim failure is returned",
			setupMocks: func(queue *mocks.MockQueueRepository, handler *servicemocks.MockEventHandler) {
				queue.EXPECT().Claim(gomock.Any(), int64(1), fixedNow).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "settle failure is returned",
			setupMocks: func(queue *mocks.MockQueueRepository, handler *servicemocks.MockEventHandler) {
				record := &models.QueueRecord{ID: 1, EventKind: models.EventMessagesUpsert}
				queue.EXPECT().Claim(gomock.Any(), int64(1), fixedNow).Return(record, nil)
				handler.EXPECT().Handle(gomock.Any(), record).Return(nil)
				queue.EXPECT().MarkCompleted(gomock.Any(), int64(1), fixedNow).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := mocks.NewMockRepository(ctrl)
			mockQueue := mocks.NewMockQueueRepository(ctrl)
			mockHandler := servicemocks.NewMockEventHandler(ctrl)
			mockRepo.EXPECT().Queue().Return(mockQueue).AnyTimes()

			tt.setupMocks(mockQueue, mockHandler)

			processor := service.NewQueueProcessor(queueConfig(), mockRepo, mockHandler, zap.NewNop(), fixedClock())

			outcome, err := processor.Process(context.Background(), 1)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, outcome)
		})
	}
}

func TestQueueProcessor_Process_RecordsOutcomeAfterCancel(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockQueue := mocks.NewMockQueueRepository(ctrl)
	mockHandler := servicemocks.NewMockEventHandler(ctrl)
	mockRepo.EXPECT().Queue().Return(mockQueue).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	record := &models.QueueRecord{ID: 3, EventKind: models.EventMessagesUpsert}

	mockQueue.EXPECT().Claim(gomock.Any(), int64(3), fixedNow).Return(record, nil)
	mockHandler.EXPECT().Handle(gomock.Any(), record).DoAndReturn(func(ctx context.Context, _ *models.QueueRecord) error {
		cancel()
		return ctx.Err()
	})
	mockQueue.EXPECT().ScheduleRetry(gomock.Any(), int64(3), 1, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, _ int, _ time.Time, _ models.ErrorEntry) error {
			return ctx.Err()
		})

	processor := service.NewQueueProcessor(queueConfig(), mockRepo, mockHandler, zap.NewNop(), fixedClock())

	outcome, err := processor.Process(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, service.OutcomeRetryScheduled, outcome)
}

func TestQueueProcessor_ProcessDue(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockQueue := mocks.NewMockQueueRepository(ctrl)
	mockHandler := servicemocks.NewMockEventHandler(ctrl)
	mockRepo.EXPECT().Queue().Return(mockQueue).AnyTimes()

	due := []*models.QueueRecord{{ID: 1}, {ID: 2}, {ID: 3}}
	mockQueue.EXPECT().ListDue(gomock.Any(), fixedNow, 10).Return(due, nil)
	for _, rec := range due {
		mockQueue.EXPECT().Claim(gomock.Any(), rec.ID, fixedNow).Return(rec, nil)
		mockHandler.EXPECT().Handle(gomock.Any(), rec).Return(nil)
		mockQueue.EXPECT().MarkCompleted(gomock.Any(), rec.ID, fixedNow).Return(nil)
	}

	processor := service.NewQueueProcessor(queueConfig(), mockRepo, mockHandler, zap.NewNop(), fixedClock())

	require.NoError(t, processor.ProcessDue(context.Background()))
}

func TestQueueProcessor_ReapStale(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockQueue := mocks.NewMockQueueRepository(ctrl)
	mockRepo.EXPECT().Queue().Return(mockQueue).AnyTimes()

	mockQueue.EXPECT().ReapStale(gomock.Any(), fixedNow.Add(-5*time.Minute), fixedNow).Return(int64(2), nil)

	processor := service.NewQueueProcessor(queueConfig(), mockRepo, nil, zap.NewNop(), fixedClock())

	require.NoError(t, processor.ReapStale(context.Background()))
}

func TestQueueProcessor_ListDeadLetters(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockDead := mocks.NewMockDeadLetterRepository(ctrl)
	mockRepo.EXPECT().DeadLetter().Return(mockDead).AnyTimes()

	items := []*models.DeadLetterEntry{{ID: 11}, {ID: 12}}
	mockDead.EXPECT().List(gomock.Any(), 10, 10).Return(items, nil)
	mockDead.EXPECT().Count(gomock.Any()).Return(int64(21), nil)

	processor := service.NewQueueProcessor(queueConfig(), mockRepo, nil, zap.NewNop())

	page, err := processor.ListDeadLetters(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, items, page.Items)
	assert.Equal(t, 21, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
}

func TestQueueProcessor_Replay(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(queue *mocks.MockQueueRepository, dead *mocks.MockDeadLetterRepository)
		expectedID int64
		wantErr    error
	}{
		{
			name: "requeues the original record",
			setupMocks: func(queue *mocks.MockQueueRepository, dead *mocks.MockDeadLetterRepository) {
				dead.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&models.DeadLetterEntry{ID: 7, OriginalRecordID: 42}, nil)
				queue.EXPECT().Requeue(gomock.Any(), int64(42), fixedNow).Return(nil)
			},
			expectedID: 42,
		},
		{
			name: "unknown dead letter",
			setupMocks: func(queue *mocks.MockQueueRepository, dead *mocks.MockDeadLetterRepository) {
				dead.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, repository.ErrNotFound)
			},
			wantErr: repository.ErrNotFound,
		},
		{
			name: "record no longer dead",
			setupMocks: func(queue *mocks.MockQueueRepository, dead *mocks.MockDeadLetterRepository) {
				dead.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&models.DeadLetterEntry{ID: 7, OriginalRecordID: 42}, nil)
				queue.EXPECT().Requeue(gomock.Any(), int64(42), fixedNow).Return(repository.ErrConflict)
			},
			wantErr: repository.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := mocks.NewMockRepository(ctrl)
			mockQueue := mocks.NewMockQueueRepository(ctrl)
			mockDead := mocks.NewMockDeadLetterRepository(ctrl)
			mockRepo.EXPECT().Queue().Return(mockQueue).AnyTimes()
			mockRepo.EXPECT().DeadLetter().Return(mockDead).AnyTimes()

			tt.setupMocks(mockQueue, mockDead)

			processor := service.NewQueueProcessor(queueConfig(), mockRepo, nil, zap.NewNop(), fixedClock())

			id, err := processor.Replay(context.Background(), 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}
