package user

import (
	"mindmeter/internal/middleware"
	userModel "mindmeter/internal/model/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes r 为 /api 分组。路径级鉴权由 middleware.Gate 完成
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := NewUserHandler(NewUserService(NewUserRepository(db)))

	admin := r.Group("/admin")
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/users/role/:role", h.ListByRole)
		admin.PUT("/users/:id/status", h.UpdateStatus)
		admin.PUT("/users/:id/role", h.UpdateRole)
		admin.GET("/profile", h.GetProfile)
	}

	// /api/auth 整体公开，写操作在路由上单独要求管理员
	auth := r.Group("/auth/users")
	{
		auth.GET("", h.ListUsers)
		auth.POST("", middleware.RequireRoles(userModel.RoleAdmin), h.CreateUser)
		auth.PUT("/:id", middleware.RequireRoles(userModel.RoleAdmin), h.UpdateUser)
		auth.DELETE("/:id", middleware.RequireRoles(userModel.RoleAdmin), h.DeleteUser)
	}

	r.GET("/student/profile", h.GetProfile)
	r.PUT("/student/profile", h.UpdateProfile)
	r.GET("/expert/profile", h.GetProfile)
}
