package expertnote

import (
	"mindmeter/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := NewNoteHandler(NewNoteService(NewNoteRepository(db), user.NewUserRepository(db)))

	expert := r.Group("/expert")
	{
		expert.POST("/notes", h.Create)
		expert.GET("/notes", h.Mine)
		expert.GET("/student/:id/notes", h.ByStudent)
	}
}
