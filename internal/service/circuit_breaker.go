// Package service implements ingestion, queue processing and conversation automation.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/api"
	"github.com/ppopeskul/convoflow/internal/config"
)

var ErrCircuitOpen = errors.New("service unavailable: circuit breaker is open")

// CircuitBreaker guards one downstream dependency.
type CircuitBreaker struct {
	name   string
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

func NewCircuitBreaker(name string, cfg *config.CircuitBreakerConfig, logger *zap.Logger) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests == 0 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.ConsecutiveFails && failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			// A cancelled caller says nothing about the dependency.
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &CircuitBreaker{
		name:   name,
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// Execute runs fn through the breaker.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	_, err := cb.cb.Execute(func() (interface{}, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			return nil, fn()
		}
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			cb.logger.Warn("Circuit breaker rejected request",
				zap.String("name", cb.name),
				zap.Error(err),
			)
			return fmt.Errorf("%s: %w", cb.name, ErrCircuitOpen)
		}
		return err
	}

	return nil
}

func (cb *CircuitBreaker) GetState() api.CircuitBreakerStatusState {
	switch cb.cb.State() {
	case gobreaker.StateHalfOpen:
		return api.HalfOpen
	case gobreaker.StateOpen:
		return api.Open
	default:
		return api.Closed
	}
}

func (cb *CircuitBreaker) GetCounts() (requests, failures uint32) {
	counts := cb.cb.Counts()
	return counts.Requests, counts.TotalFailures
}

// Status reports the breaker in the health response shape.
func (cb *CircuitBreaker) Status() api.CircuitBreakerStatus {
	requests, failures := cb.GetCounts()
	return api.CircuitBreakerStatus{
		Name:     cb.name,
		State:    cb.GetState(),
		Requests: requests,
		Failures: failures,
	}
}
