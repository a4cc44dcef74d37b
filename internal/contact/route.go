package contact

import (
	"mindmeter/config"
	"mindmeter/internal/mailer"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, m mailer.Mailer) {
	h := NewContactHandler(NewContactService(m, config.Conf.Mail))

	r.POST("/contact", h.Contact)
	r.POST("/feedback", h.Feedback)
}
