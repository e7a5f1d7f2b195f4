package lock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/lock"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	return client
}

func TestLocker_WithLock(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := setupRedis(t)
	locker := lock.NewLocker(client, 5*time.Second, zap.NewNop())
	ctx := context.Background()

	t.Run("Runs fn and releases the lease", func(t *testing.T) {
		called := false
		err := locker.WithLock(ctx, "contact:1", func(ctx context.Context) error {
			called = true
			exists, err := client.Exists(ctx, "lock:contact:1").Result()
			require.NoError(t, err)
			assert.Equal(t, int64(1), exists)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)

		exists, err := client.Exists(ctx, "lock:contact:1").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(0), exists)
	})

	t.Run("Second holder is rejected", func(t *testing.T) {
		err := locker.WithLock(ctx, "contact:2", func(ctx context.Context) error {
			inner := locker.WithLock(ctx, "contact:2", func(context.Context) error {
				t.Fatal("nested lock must not run")
				return nil
			})
			assert.ErrorIs(t, inner, lock.ErrNotAcquired)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("Propagates fn error and still releases", func(t *testing.T) {
		boom := errors.New("boom")
		err := locker.WithLock(ctx, "contact:3", func(context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)

		err = locker.WithLock(ctx, "contact:3", func(context.Context) error { return nil })
		assert.NoError(t, err)
	})

	t.Run("Expired lease taken over is not deleted by the old holder", func(t *testing.T) {
		short := lock.NewLocker(client, 200*time.Millisecond, zap.NewNop())
		err := short.WithLock(ctx, "contact:4", func(context.Context) error {
			time.Sleep(300 * time.Millisecond)
			ok, err := client.SetNX(ctx, "lock:contact:4", "other", time.Minute).Result()
			require.NoError(t, err)
			assert.True(t, ok)
			return nil
		})
		require.NoError(t, err)

		val, err := client.Get(ctx, "lock:contact:4").Result()
		require.NoError(t, err)
		assert.Equal(t, "other", val)
	})
}
