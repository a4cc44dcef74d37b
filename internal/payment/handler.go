package payment

import (
	"net/http"

	"mindmeter/internal/dto"

	"github.com/gin-gonic/gin"
)

// maxWebhookBody Stripe 回调体上限
const maxWebhookBody = 64 << 10

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateCheckoutSession 创建支付会话
// @Summary 创建支付会话
// @Description plan 为 pro 时金额 $20，其余为 $10
// @Tags 支付
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckoutRequest true "套餐"
// @Success 200 {object} response.Response{data=CheckoutResponse}
// @Router /payment/create-checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req CheckoutRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Checkout(c.Request.Context(), req.Plan)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, resp)
}

// Webhook Stripe 回调，验签通过后固定返回 success
func (h *PaymentHandler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "Webhook error: "+err.Error())
		return
	}

	if bizErr := h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	c.String(http.StatusOK, "success")
}
