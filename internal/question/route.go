package question

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := NewQuestionHandler(NewQuestionService(db, NewQuestionRepository(db)))

	public := r.Group("/depression-test")
	{
		public.GET("/questions", h.ListActive)
		public.GET("/categories", h.Categories)
	}

	admin := r.Group("/admin/questions")
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.GET("/categories", h.Categories)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.PUT("/:id/toggle", h.Toggle)
		admin.GET("/:id/options", h.Options)
	}
}
