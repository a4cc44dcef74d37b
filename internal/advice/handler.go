package advice

import (
	"mindmeter/internal/dto"

	"github.com/gin-gonic/gin"
)

type AdviceHandler struct {
	service AdviceService
}

func NewAdviceHandler(service AdviceService) *AdviceHandler {
	return &AdviceHandler{service: service}
}

// Send 专家向用户发送建议
// @Summary 发送建议
// @Tags 建议
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendRequest true "消息"
// @Success 200 {object} response.Response{data=MessageDTO}
// @Failure 404 {object} response.Response
// @Router /expert/advice [post]
func (h *AdviceHandler) Send(c *gin.Context) {
	current, ok := dto.CurrentUser(c)
	if !ok {
		return
	}
	var req SendRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	m, err := h.service.Send(c.Request.Context(), current.ID, &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, m)
}

// Received 当前用户收到的建议
// @Summary 收到的建议
// @Tags 建议
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]MessageDTO}
// @Router /advice/received [get]
func (h *AdviceHandler) Received(c *gin.Context) {
	current, ok := dto.CurrentUser(c)
	if !ok {
		return
	}
	msgs, err := h.service.Received(c.Request.Context(), current.ID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, msgs)
}

func (h *AdviceHandler) Sent(c *gin.Context) {
	current, ok := dto.CurrentUser(c)
	if !ok {
		return
	}
	msgs, err := h.service.Sent(c.Request.Context(), current.ID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, msgs)
}

func (h *AdviceHandler) UnreadCount(c *gin.Context) {
	current, ok := dto.CurrentUser(c)
	if !ok {
		return
	}
	count, err := h.service.UnreadCount(c.Request.Context(), current.ID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, UnreadCount{Count: count})
}

func (h *AdviceHandler) MarkRead(c *gin.Context) {
	current, ok := dto.CurrentUser(c)
	if !ok {
		return
	}
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.MarkRead(c.Request.Context(), id, current.ID); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.MessageResponse(c, "marked as read")
}
