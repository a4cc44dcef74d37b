package assessment

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := NewAssessmentHandler(NewAssessmentService(db, NewSubmissionRepository(db)))

	test := r.Group("/depression-test")
	{
		test.POST("/submit", h.Submit)
		test.GET("/history", h.History)
	}

	admin := r.Group("/admin/test-results")
	{
		admin.GET("", h.ListAll)
		admin.GET("/recent", h.Recent)
		admin.GET("/:id/answers", h.Answers)
		admin.DELETE("/:id", h.Delete)
	}

	expert := r.Group("/expert")
	{
		expert.GET("/test-results", h.ListAll)
		expert.GET("/test-results/recent", h.Recent)
		expert.GET("/test-results/severity/:level", h.ListBySeverity)
		expert.GET("/test-results/:id/answers", h.Answers)
		expert.GET("/student/:id/test-history", h.ListByStudent)
	}
}
