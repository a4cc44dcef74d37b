package otp

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedis 需要设置 TEST_INTEGRATION 并且本机可用 Docker
func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("TEST_INTEGRATION 未设置，跳过 Redis 集成测试")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "docker.io/redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStore(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()
	store := NewRedisStore(client)

	require.NoError(t, store.Put(ctx, "reset:an@example.com", "123456", time.Minute))

	ttl, err := client.TTL(ctx, "mindmeter:otp:reset:an@example.com").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	v, ok, err := store.Get(ctx, "reset:an@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "123456", v)

	require.NoError(t, store.Delete(ctx, "reset:an@example.com"))
	_, ok, err = store.Get(ctx, "reset:an@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	svc := NewService(store, time.Minute)
	code, err := svc.Issue(ctx, "b@example.com")
	require.NoError(t, err)
	ok, err = svc.Verify(ctx, "b@example.com", code)
	require.NoError(t, err)
	assert.True(t, ok)
}
