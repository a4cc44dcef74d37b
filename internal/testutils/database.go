package testutils

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"mindmeter/internal/database"
	"mindmeter/internal/model"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB 返回一个已迁移的测试数据库，并设置全局 database.PostgresDB。
// 连接方式按顺序选择：
//  1. TEST_DATABASE_DSN 指定的 PostgreSQL
//  2. 设置了 TEST_INTEGRATION 时由 testcontainers 启动的 PostgreSQL
//  3. 内存 SQLite
//
// PostgreSQL 下返回一个事务，测试结束自动回滚；SQLite 每个测试独立一个库
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" && os.Getenv("TEST_INTEGRATION") != "" {
		dsn = containerDSN(t)
	}

	if dsn == "" {
		db := openSQLite(t)
		database.PostgresDB = db
		return db
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	tx := db.Begin()
	database.PostgresDB = tx
	t.Cleanup(func() {
		tx.Rollback()
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return tx
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite database: %v", err)
	}

	// 单连接，事务内外不能混用 db 和 tx
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate sqlite database: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

var (
	containerOnce sync.Once
	containerConn string
	containerErr  error
)

// containerDSN 同一个测试进程只启动一个容器，由 testcontainers 的 reaper 负责回收
func containerDSN(t *testing.T) string {
	t.Helper()

	containerOnce.Do(func() {
		ctx := context.Background()
		container, err := tcpostgres.Run(ctx,
			"docker.io/postgres:17-alpine",
			tcpostgres.WithDatabase("mindmeter_test"),
			tcpostgres.WithUsername("mindmeter"),
			tcpostgres.WithPassword("test-password"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			containerErr = err
			return
		}
		containerConn, containerErr = container.ConnectionString(ctx, "sslmode=disable")
	})

	if containerErr != nil {
		t.Fatalf("Failed to start postgres container: %v", containerErr)
	}
	return containerConn
}
