package auth

import (
	"mindmeter/config"
	"mindmeter/internal/mailer"
	"mindmeter/internal/otp"
	"mindmeter/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册 /api/auth 下的账号接口
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, store otp.Store, m mailer.Mailer) {
	cfg := config.Conf
	service := NewAuthService(Dependencies{
		Users:       user.NewUserRepository(db),
		OTP:         otp.NewService(store, cfg.OTP.TTL()),
		States:      store,
		Mailer:      m,
		Google:      NewGoogleProvider(cfg.Google),
		FrontendURL: cfg.Frontend.URL,
	})
	h := NewAuthHandler(service)

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/anonymous/create", h.CreateAnonymous)
		auth.POST("/anonymous/upgrade/:id", h.UpgradeAnonymous)

		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/forgot-password/request-otp", h.ForgotPassword)
		auth.POST("/forgot-password/verify-otp", h.ResetPassword)
		// 与 verify-otp 相同，同样要求验证码
		auth.POST("/reset-password", h.ResetPassword)

		auth.GET("/google/login", h.GoogleLogin)
		auth.GET("/google/callback", h.GoogleCallback)
	}
}
