package chatbot

import (
	"mindmeter/internal/dto"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service ChatService
}

func NewChatHandler(service ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat 与聊天机器人对话
// @Summary 聊天机器人
// @Tags 聊天机器人
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChatRequest true "消息"
// @Success 200 {object} response.Response{data=ChatResponse}
// @Router /chatbot [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Ask(c.Request.Context(), req.Message)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, resp)
}
