package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/api"
	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/service"
)

func breakerConfig() *config.CircuitBreakerConfig {
	return &config.CircuitBreakerConfig{
		MaxRequests:      1,
		Interval:         60,
		Timeout:          60,
		FailureRatio:     0.5,
		ConsecutiveFails: 3,
	}
}

func TestCircuitBreaker_Execute(t *testing.T) {
	tests := []struct {
		name    string
		ctx     func() context.Context
		fn      func() error
		wantErr string
	}{
		{
			name: "success",
			ctx:  context.Background,
			fn:   func() error { return nil },
		},
		{
			name:    "function error is returned as is",
			ctx:     context.Background,
			fn:      func() error { return errors.New("boom") },
			wantErr: "boom",
		},
		{
			name: "cancelled context skips the call",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			fn:      func() error { t.Fatal("must not run"); return nil },
			wantErr: context.Canceled.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := service.NewCircuitBreaker("gateway", breakerConfig(), zap.NewNop())

			err := cb.Execute(tt.ctx(), tt.fn)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCircuitBreaker_Trips(t *testing.T) {
	cb := service.NewCircuitBreaker("completion", breakerConfig(), zap.NewNop())
	failing := func() error { return errors.New("down") }

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), failing)
	}

	assert.Equal(t, api.Open, cb.GetState())

	err := cb.Execute(context.Background(), func() error { return nil })
	assert.ErrorIs(t, err, service.ErrCircuitOpen)

	status := cb.Status()
	assert.Equal(t, "completion", status.Name)
	assert.Equal(t, api.Open, status.State)
}

func TestCircuitBreaker_StartsClosed(t *testing.T) {
	cb := service.NewCircuitBreaker("gateway", breakerConfig(), zap.NewNop())

	assert.Equal(t, api.Closed, cb.GetState())
	requests, failures := cb.GetCounts()
	assert.Zero(t, requests)
	assert.Zero(t, failures)
	assert.Equal(t, "gateway", cb.Name())
}
