package question

import (
	"mindmeter/internal/dto"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	service QuestionService
}

func NewQuestionHandler(service QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// ListActive 获取启用的题目
// @Summary 获取启用的题目
// @Description type 为题型（如 DASS-21），为空时返回全部题型
// @Tags 测评
// @Produce json
// @Param type query string false "题型"
// @Success 200 {object} response.Response{data=[]QuestionDTO}
// @Router /depression-test/questions [get]
func (h *QuestionHandler) ListActive(c *gin.Context) {
	qs, err := h.service.ListActive(c.Request.Context(), c.Query("type"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, qs)
}

// Categories 启用题目的分类
// @Summary 启用题目的分类
// @Tags 测评
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Router /depression-test/categories [get]
func (h *QuestionHandler) Categories(c *gin.Context) {
	categories, err := h.service.ActiveCategories(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, categories)
}

func (h *QuestionHandler) List(c *gin.Context) {
	qs, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, qs)
}

// Create 创建题目
// @Summary 创建题目
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body QuestionRequest true "题目及选项"
// @Success 200 {object} response.Response{data=QuestionDTO}
// @Router /admin/questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req QuestionRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	q, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, q)
}

// Update 更新题目，选项整体替换
// @Summary 更新题目
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Param request body QuestionRequest true "题目及选项"
// @Success 200 {object} response.Response{data=QuestionDTO}
// @Router /admin/questions/{id} [put]
func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req QuestionRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	q, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, q)
}

func (h *QuestionHandler) Delete(c *gin.Context) {
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

func (h *QuestionHandler) Toggle(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	q, err := h.service.Toggle(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, q)
}

func (h *QuestionHandler) Options(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	opts, err := h.service.Options(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, opts)
}
