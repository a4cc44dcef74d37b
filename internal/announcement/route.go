package announcement

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := NewAnnouncementHandler(NewAnnouncementService(NewAnnouncementRepository(db)))

	admin := r.Group("/admin/announcements")
	{
		admin.GET("", h.List)
		admin.GET("/active", h.Active)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.PUT("/:id/toggle", h.Toggle)
	}

	r.GET("/auth/student/announcements", h.Active)
}
