package database

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig 单机或哨兵。MasterName 非空时按哨兵模式连接，Addrs 为哨兵地址
type RedisConfig struct {
	ServiceName string
	Addrs       []string
	MasterName  string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

func (c RedisConfig) withDefaults() RedisConfig {
	if c.ServiceName == "" {
		c.ServiceName = "mindmeter"
	}
	if len(c.Addrs) == 0 {
		c.Addrs = []string{"localhost:6379"}
	}
	if c.PoolSize == 0 {
		c.PoolSize = 10
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = 5 * time.Second
	}
	return c
}

// HostPort 拼接 host:port
func HostPort(host string, port int) string {
	if host == "" {
		host = "localhost"
	}
	if port == 0 {
		port = 6379
	}
	return host + ":" + strconv.Itoa(port)
}

// InitRedis 建连后立即 PING，失败时关闭客户端
func InitRedis(ctx context.Context, cfg RedisConfig) (redis.UniversalClient, error) {
	cfg = cfg.withDefaults()

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:           cfg.Addrs,
		MasterName:      cfg.MasterName,
		Password:        cfg.Password,
		DB:              cfg.DB,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    2,
		ConnMaxLifetime: time.Hour,
		DialTimeout:     cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("连接 Redis 失败: %w", err)
	}

	slog.Info("Redis 连接成功",
		"service", cfg.ServiceName,
		"addrs", cfg.Addrs,
		"sentinel", cfg.MasterName != "",
		"db", cfg.DB,
	)
	return client, nil
}
