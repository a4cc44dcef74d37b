package route

import (
	"log/slog"
	"net/http"

	"mindmeter/config"
	"mindmeter/internal/advice"
	"mindmeter/internal/announcement"
	"mindmeter/internal/assessment"
	"mindmeter/internal/auth"
	"mindmeter/internal/chatbot"
	"mindmeter/internal/contact"
	"mindmeter/internal/expertnote"
	"mindmeter/internal/identity"
	"mindmeter/internal/mailer"
	"mindmeter/internal/middleware"
	"mindmeter/internal/otp"
	"mindmeter/internal/payment"
	"mindmeter/internal/question"
	"mindmeter/internal/statistics"
	"mindmeter/internal/user"

	_ "mindmeter/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Deps 路由依赖，由 main 组装
type Deps struct {
	DB     *gorm.DB
	OTP    otp.Store
	Mailer mailer.Mailer
	Logger *slog.Logger
}

func initRoute(r *gin.Engine, deps Deps) {
	// Swagger 文档与监控
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth.RegisterRoutes(api, deps.DB, deps.OTP, deps.Mailer)
		user.RegisterRoutes(api, deps.DB)
		question.RegisterRoutes(api, deps.DB)
		assessment.RegisterRoutes(api, deps.DB)
		announcement.RegisterRoutes(api, deps.DB)
		advice.RegisterRoutes(api, deps.DB)
		expertnote.RegisterRoutes(api, deps.DB)
		statistics.RegisterRoutes(api, deps.DB)
		contact.RegisterRoutes(api, deps.Mailer)
		chatbot.RegisterRoutes(api)
		payment.RegisterRoutes(api, deps.DB)
	}
}

// SetupRouter 中间件顺序：请求 ID、日志、指标、跨域、认证、路径鉴权
func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.Conf.Frontend.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	resolver := identity.NewResolver(user.NewUserRepository(deps.DB))
	r.Use(middleware.Authenticate(resolver))
	r.Use(middleware.Gate(middleware.DefaultRules))

	initRoute(r, deps)

	return r
}
