package payment

import (
	"mindmeter/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	provider := NewStripeProvider(StripeOptionsFromConfig(config.Conf))
	h := NewPaymentHandler(NewPaymentService(db, NewPaymentRepository(db), provider))

	p := r.Group("/payment")
	{
		p.POST("/create-checkout-session", h.CreateCheckoutSession)
		p.POST("/webhook", h.Webhook)
	}
}
