package advice

import (
	"mindmeter/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := NewAdviceHandler(NewAdviceService(NewAdviceRepository(db), user.NewUserRepository(db)))

	received := r.Group("/advice")
	{
		received.GET("/received", h.Received)
		received.GET("/unread/count", h.UnreadCount)
		received.PUT("/:id/read", h.MarkRead)
	}

	expert := r.Group("/expert")
	{
		expert.POST("/advice", h.Send)
		expert.GET("/messages/sent", h.Sent)
		expert.PUT("/messages/:id/read", h.MarkRead)
	}
}
