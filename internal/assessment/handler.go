package assessment

import (
	"strconv"

	"mindmeter/internal/dto"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	service AssessmentService
}

func NewAssessmentHandler(service AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// Submit 提交测评
// @Summary 提交测评
// @Description 根据作答计算总分和严重程度，结果与作答在同一事务内保存
// @Tags 测评
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitRequest true "作答"
// @Success 200 {object} response.Response{data=SubmitResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /depression-test/submit [post]
func (h *AssessmentHandler) Submit(c *gin.Context) {
	current, ok := dto.CurrentUser(c)
	if !ok {
		return
	}
	var req SubmitRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Submit(c.Request.Context(), current.ID, &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

// History 当前用户的测评历史
// @Summary 测评历史
// @Tags 测评
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]ResultDTO}
// @Router /depression-test/history [get]
func (h *AssessmentHandler) History(c *gin.Context) {
	current, ok := dto.CurrentUser(c)
	if !ok {
		return
	}

	results, err := h.service.History(c.Request.Context(), current.ID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, results)
}

func (h *AssessmentHandler) ListAll(c *gin.Context) {
	results, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, results)
}

// ListBySeverity 按严重程度筛选
// @Summary 按严重程度筛选测评结果
// @Tags 专家
// @Produce json
// @Security BearerAuth
// @Param level path string true "MINIMAL/MILD/MODERATE/SEVERE"
// @Success 200 {object} response.Response{data=[]ResultDTO}
// @Router /expert/test-results/severity/{level} [get]
func (h *AssessmentHandler) ListBySeverity(c *gin.Context) {
	results, err := h.service.ListBySeverity(c.Request.Context(), c.Param("level"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, results)
}

func (h *AssessmentHandler) ListByStudent(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	results, err := h.service.ListByStudent(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, results)
}

// Recent limit 非数字时按默认值处理
func (h *AssessmentHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	results, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, results)
}

func (h *AssessmentHandler) Answers(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	answers, err := h.service.Answers(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, answers)
}

func (h *AssessmentHandler) Delete(c *gin.Context) {
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
