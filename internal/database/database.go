package database

import (
	"context"
	"time"

	"mindmeter/config"
	"mindmeter/packages/database"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const serviceName = "mindmeter"

var (
	PostgresDB *gorm.DB
	// RedisDB 仅在 otp.backend=redis 时初始化
	RedisDB redis.UniversalClient
)

// InitDatabase 初始化 PostgreSQL，OTP 使用 redis 后端时同时初始化 Redis
func InitDatabase(ctx context.Context) {
	dbConf := config.Conf.Database

	var err error
	PostgresDB, err = database.InitPostgres(database.PostgresConfig{
		ServiceName:     serviceName,
		DSN:             dbConf.DSN,
		Username:        dbConf.Username,
		Password:        dbConf.Password,
		Host:            dbConf.Host,
		Port:            dbConf.Port,
		Database:        dbConf.Database,
		SSLMode:         dbConf.SSLMode,
		TimeZone:        dbConf.TimeZone,
		LogLevel:        dbConf.LogLevel,
		SlowThreshold:   time.Duration(dbConf.SlowQueryMs) * time.Millisecond,
		MaxIdleConns:    dbConf.MaxIdleConns,
		MaxOpenConns:    dbConf.MaxOpenConns,
		ConnMaxLifetime: time.Duration(dbConf.MaxLifetime) * time.Second,
	})
	if err != nil {
		panic(err)
	}

	if config.Conf.OTP.Backend != "redis" {
		return
	}

	RedisDB, err = database.InitRedis(ctx, redisConfig(config.Conf.Redis))
	if err != nil {
		panic(err)
	}
}

func redisConfig(c config.RedisConfig) database.RedisConfig {
	addrs := []string{database.HostPort(c.Host, c.Port)}
	if c.MasterName != "" {
		addrs = c.Sentinels
	}
	return database.RedisConfig{
		ServiceName: serviceName,
		Addrs:       addrs,
		MasterName:  c.MasterName,
		Password:    c.Password,
		DB:          c.DB,
		PoolSize:    c.PoolSize,
	}
}

// Close 释放连接
func Close() {
	_ = database.ClosePostgres(PostgresDB)
	if RedisDB != nil {
		_ = RedisDB.Close()
	}
}
