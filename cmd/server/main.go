//go:generate swag init -g cmd/server/main.go -o docs --parseInternal

// @title MindMeter API
// @version 1.0
// @description 心理健康自评平台后端接口
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindmeter/config"
	"mindmeter/internal/auth"
	"mindmeter/internal/database"
	"mindmeter/internal/mailer"
	"mindmeter/internal/model"
	"mindmeter/internal/otp"
	"mindmeter/internal/route"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		slog.Error("服务退出", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. 加载配置
	if err := config.Load("config.yaml"); err != nil {
		return err
	}
	logger := config.SetupLogger(config.Conf.Log)
	gin.SetMode(config.Conf.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. 初始化数据库
	database.InitDatabase(ctx)
	defer database.Close()

	if err := model.InitTable(database.PostgresDB); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}

	// 3. 设置路由
	r := route.SetupRouter(route.Deps{
		DB:     database.PostgresDB,
		OTP:    newOTPStore(config.Conf.OTP),
		Mailer: mailer.New(&config.Conf.Smtp),
		Logger: logger,
	})

	// 4. 启动服务
	srv := &http.Server{
		Addr:         config.Conf.Server.Addr(),
		Handler:      r,
		ReadTimeout:  config.Conf.Server.ReadTimeout,
		WriteTimeout: config.Conf.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("服务启动", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("服务异常退出: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("正在关闭服务")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Conf.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newOTPStore(cfg config.OTPConfig) otp.Store {
	if cfg.Backend == "redis" {
		return otp.NewRedisStore(database.RedisDB)
	}
	slog.Info("OTP 使用内存存储，多实例部署时不共享")
	return otp.NewMemoryStore(cfg.CacheSize, memoryStoreTTL(cfg))
}

// memoryStoreTTL 内存存储同时保存验证码和 OAuth state，上限取两者较大值
func memoryStoreTTL(cfg config.OTPConfig) time.Duration {
	return max(cfg.TTL(), auth.StateExpiration)
}
