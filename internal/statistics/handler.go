package statistics

import (
	"strconv"

	"mindmeter/internal/dto"
	"mindmeter/packages/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	service StatisticsService
}

func NewStatisticsHandler(service StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// System 系统统计
// @Summary 系统统计
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=SystemStatistics}
// @Router /admin/statistics [get]
func (h *StatisticsHandler) System(c *gin.Context) {
	stats, err := h.service.SystemStatistics(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, stats)
}

// TestCountByDate 按日测评数
// @Summary 按日测评数
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param days query int false "天数，默认 14"
// @Success 200 {object} response.Response{data=TestCountByDate}
// @Failure 400 {object} response.Response
// @Router /admin/statistics/test-count-by-date [get]
func (h *StatisticsHandler) TestCountByDate(c *gin.Context) {
	days := DefaultDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			dto.ErrorResponse(c, response.NewValidationError("days must be a number"))
			return
		}
		days = n
	}

	result, err := h.service.TestCountByDate(c.Request.Context(), days)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}
