package statistics

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := NewStatisticsHandler(NewStatisticsService(NewStatisticsRepository(db)))

	r.GET("/admin/statistics", h.System)
	r.GET("/admin/statistics/test-count-by-date", h.TestCountByDate)
	r.GET("/expert/statistics", h.System)
	r.GET("/expert/statistics/test-count-by-date", h.TestCountByDate)
}
