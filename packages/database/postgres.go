package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresConfig 连接参数。DSN 非空时忽略分项配置
type PostgresConfig struct {
	ServiceName string
	DSN         string
	Username    string
	Password    string
	Host        string
	Port        int
	Database    string
	SSLMode     bool
	TimeZone    string

	LogLevel      string // silent, error, warn, info
	SlowThreshold time.Duration

	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

func (c PostgresConfig) withDefaults() PostgresConfig {
	if c.ServiceName == "" {
		c.ServiceName = "mindmeter"
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.SlowThreshold == 0 {
		c.SlowThreshold = 200 * time.Millisecond
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 10
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 50
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = time.Hour
	}
	return c
}

// ConnString 优先使用 DSN，否则由分项拼接
func (c PostgresConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	sslmode := "disable"
	if c.SSLMode {
		sslmode = "require"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.Username, c.Password, c.Database, c.Port, sslmode)
	if c.TimeZone != "" {
		dsn += " TimeZone=" + c.TimeZone
	}
	return dsn
}

// InitPostgres 打开连接池并设置池参数，SQL 日志写入 slog
func InitPostgres(cfg PostgresConfig) (*gorm.DB, error) {
	cfg = cfg.withDefaults()

	db, err := gorm.Open(postgres.Open(cfg.ConnString()), &gorm.Config{
		Logger: NewGormLogger(cfg.LogLevel, cfg.SlowThreshold),
		// 唯一索引冲突等错误转为 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取数据库实例失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	slog.Info("数据库连接成功", "service", cfg.ServiceName, "host", cfg.Host, "database", cfg.Database)
	return db, nil
}

// ClosePostgres 关闭底层连接池
func ClosePostgres(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// slogLogger 把 gorm 的日志接口转到 slog
type slogLogger struct {
	level         logger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger 未知级别按 warn 处理；slow 为 0 时不记录慢查询
func NewGormLogger(level string, slow time.Duration) logger.Interface {
	return &slogLogger{level: parseLogLevel(level), slowThreshold: slow}
}

func (l *slogLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		slog.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		slog.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		slog.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Trace 记录 SQL。记录不存在不算错误
func (l *slogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		slog.ErrorContext(ctx, "SQL 执行失败", "error", err, "elapsed", elapsed, "rows", rows, "sql", sql)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		slog.WarnContext(ctx, "慢查询", "elapsed", elapsed, "threshold", l.slowThreshold, "rows", rows, "sql", sql)
	case l.level >= logger.Info:
		sql, rows := fc()
		slog.DebugContext(ctx, "SQL", "elapsed", elapsed, "rows", rows, "sql", sql)
	}
}
