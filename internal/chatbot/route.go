package chatbot

import (
	"mindmeter/config"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	h := NewChatHandler(NewChatService(NewOpenAIProvider(config.Conf.OpenAI)))

	r.POST("/chatbot", h.Chat)
}
