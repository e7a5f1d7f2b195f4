package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sendCounterTTL = 48 * time.Hour

type redisSendCounter struct {
	client *redis.Client
}

// NewSendCounter counts outbound sends per tenant and local calendar day.
func NewSendCounter(client *redis.Client) SendCounter {
	return &redisSendCounter{
		client: client,
	}
}

// SendCounterKey buckets sends by the day of at, which callers pass in the
// tenant's timezone.
func SendCounterKey(tenantID string, at time.Time) string {
	return fmt.Sprintf("sends:%s:%s", tenantID, at.Format("20060102"))
}

// Reserve takes one slot of the daily cap. A limit of zero or less disables the cap.
func (c *redisSendCounter) Reserve(ctx context.Context, tenantID string, limit int, at time.Time) error {
	if limit <= 0 {
		return nil
	}

	key := SendCounterKey(tenantID, at)
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, sendCounterTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to reserve send slot: %w", err)
	}

	if incr.Val() > int64(limit) {
		if err := c.client.Decr(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to roll back send slot: %w", err)
		}
		return ErrDailyCapReached
	}

	return nil
}

// Release returns a slot taken by Reserve when the send did not happen.
func (c *redisSendCounter) Release(ctx context.Context, tenantID string, at time.Time) error {
	if err := c.client.Decr(ctx, SendCounterKey(tenantID, at)).Err(); err != nil {
		return fmt.Errorf("failed to release send slot: %w", err)
	}
	return nil
}
