package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ppopeskul/convoflow/internal/api"
	"github.com/ppopeskul/convoflow/internal/repository"
)

type healthService struct {
	repo             repository.Repository
	redisClient      *redis.Client
	schedulerService SchedulerService
	breakers         []*CircuitBreaker
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	schedulerService SchedulerService,
	breakers ...*CircuitBreaker,
) HealthService {
	return &healthService{
		repo:             repo,
		redisClient:      redisClient,
		schedulerService: schedulerService,
		breakers:         breakers,
	}
}

// GetHealth is unhealthy when a datastore is down and degraded when any
// downstream circuit is open.
func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     api.Healthy,
		Schedulers: s.schedulerService.Statuses(),
	}

	if s.schedulerService.IsRunning() {
		status.SchedulerStatus = api.HealthResponseSchedulerStatusRunning
	} else {
		status.SchedulerStatus = api.HealthResponseSchedulerStatusStopped
	}

	status.DatabaseStatus = s.checkDatabaseHealth()
	status.RedisStatus = s.checkRedisHealth(ctx)

	degraded := false
	for _, cb := range s.breakers {
		st := cb.Status()
		status.CircuitBreakers = append(status.CircuitBreakers, st)
		if st.State == api.Open {
			degraded = true
		}
	}

	switch {
	case status.DatabaseStatus != api.HealthResponseDatabaseStatusConnected ||
		status.RedisStatus != api.HealthResponseRedisStatusConnected:
		status.Status = api.Unhealthy
	case degraded:
		status.Status = api.Degraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() api.HealthResponseDatabaseStatus {
	if err := s.repo.Ping(); err != nil {
		return api.HealthResponseDatabaseStatusDisconnected
	}
	return api.HealthResponseDatabaseStatusConnected
}

func (s *healthService) checkRedisHealth(ctx context.Context) api.HealthResponseRedisStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return api.HealthResponseRedisStatusDisconnected
	}

	return api.HealthResponseRedisStatusConnected
}
