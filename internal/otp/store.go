package otp

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
)

// Store 带过期时间的键值存储，同一个键后写覆盖先写
type Store interface {
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	// Get 键不存在或已过期时 ok 为 false
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Delete(ctx context.Context, key string) error
}

const redisKeyPrefix = "mindmeter:otp:"

// RedisStore 多实例共享的存储
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, redisKeyPrefix+key, value, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, redisKeyPrefix+key).Err()
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore 进程内存储，重启即丢失。
// 条目按各自 ttl 过期，同时受 LRU 的 maxTTL 上限约束
type MemoryStore struct {
	cache *expirable.LRU[string, memoryEntry]
	now   func() time.Time
}

func NewMemoryStore(size int, maxTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: expirable.NewLRU[string, memoryEntry](size, nil, maxTTL),
		now:   time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, key, value string, ttl time.Duration) error {
	s.cache.Add(key, memoryEntry{value: value, expiresAt: s.now().Add(ttl)})
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	e, ok := s.cache.Get(key)
	if !ok {
		return "", false, nil
	}
	if !s.now().Before(e.expiresAt) {
		s.cache.Remove(key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Remove(key)
	return nil
}
