package contact

import (
	"mindmeter/internal/dto"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	service ContactService
}

func NewContactHandler(service ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Contact 联系表单
// @Summary 发送联系表单
// @Tags 联系
// @Accept json
// @Produce json
// @Param request body ContactRequest true "联系内容"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /contact [post]
func (h *ContactHandler) Contact(c *gin.Context) {
	var req ContactRequest
	if !dto.BindJSON(c, &req) {
		return
	}
	if err := h.service.Contact(&req); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.MessageResponse(c, "Message sent successfully")
}

func (h *ContactHandler) Feedback(c *gin.Context) {
	var req FeedbackRequest
	if !dto.BindJSON(c, &req) {
		return
	}
	if err := h.service.Feedback(&req); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.MessageResponse(c, "Feedback sent successfully")
}
