package announcement

import (
	"mindmeter/internal/dto"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	service AnnouncementService
}

func NewAnnouncementHandler(service AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, items)
}

// Active 启用中的公告
// @Summary 启用中的公告
// @Description 按创建时间倒序
// @Tags 公告
// @Produce json
// @Success 200 {object} response.Response{data=[]announcement.Announcement}
// @Router /auth/student/announcements [get]
func (h *AnnouncementHandler) Active(c *gin.Context) {
	items, err := h.service.Active(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, items)
}

// Create 创建公告
// @Summary 创建公告
// @Tags 公告
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AnnouncementRequest true "公告"
// @Success 200 {object} response.Response{data=announcement.Announcement}
// @Router /admin/announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req AnnouncementRequest
	if !dto.BindJSON(c, &req) {
		return
	}
	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, a)
}

func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req AnnouncementRequest
	if !dto.BindJSON(c, &req) {
		return
	}
	a, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, a)
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.MessageResponse(c, "deleted")
}

func (h *AnnouncementHandler) Toggle(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	a, err := h.service.Toggle(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, a)
}
