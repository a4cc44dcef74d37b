package expertnote

import (
	"mindmeter/internal/dto"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	service NoteService
}

func NewNoteHandler(service NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// Create 添加备注
// @Summary 添加专家备注
// @Tags 专家
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNoteRequest true "备注"
// @Success 200 {object} response.Response{data=expertnote.Note}
// @Router /expert/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	current, ok := dto.CurrentUser(c)
	if !ok {
		return
	}
	var req CreateNoteRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	n, err := h.service.Create(c.Request.Context(), current.ID, &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, n)
}

func (h *NoteHandler) Mine(c *gin.Context) {
	current, ok := dto.CurrentUser(c)
	if !ok {
		return
	}
	notes, err := h.service.ByExpert(c.Request.Context(), current.ID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, notes)
}

func (h *NoteHandler) ByStudent(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	notes, err := h.service.ByStudent(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, notes)
}
