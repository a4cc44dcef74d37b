package payment

import (
	"context"
	"log/slog"
	"strings"

	paymentModel "mindmeter/internal/model/payment"
	userModel "mindmeter/internal/model/user"
	"mindmeter/packages/response"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	planPlus = Plan{Code: userModel.PlanPlus, Name: "Plus Plan", AmountCents: 1000}
	planPro  = Plan{Code: userModel.PlanPro, Name: "Pro Plan", AmountCents: 2000}
)

// PlanFor 只有 "pro" 对应 PRO，其余都按 PLUS 处理
func PlanFor(name string) Plan {
	if strings.EqualFold(strings.TrimSpace(name), "pro") {
		return planPro
	}
	return planPlus
}

type CheckoutRequest struct {
	Plan string `json:"plan"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type PaymentService interface {
	Checkout(ctx context.Context, plan string) (*CheckoutResponse, *response.BusinessError)
	HandleWebhook(ctx context.Context, payload []byte, signature string) *response.BusinessError
}

type paymentService struct {
	db       *gorm.DB
	repo     PaymentRepository
	provider Provider
}

func NewPaymentService(db *gorm.DB, repo PaymentRepository, provider Provider) PaymentService {
	return &paymentService{db: db, repo: repo, provider: provider}
}

func (s *paymentService) Checkout(ctx context.Context, plan string) (*CheckoutResponse, *response.BusinessError) {
	url, err := s.provider.CreateCheckout(ctx, PlanFor(plan))
	if err != nil {
		return nil, response.NewInternalError("failed to create checkout session", err)
	}
	return &CheckoutResponse{URL: url}, nil
}

// HandleWebhook 验签失败返回 400。同一事件只处理一次，付款邮箱找不到用户时忽略
func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) *response.BusinessError {
	event, err := s.provider.ParseWebhook(payload, signature)
	if err != nil {
		return response.NewValidationError("Webhook error: " + err.Error())
	}
	if event.Type != eventCheckoutCompleted {
		return nil
	}

	email := userModel.NormalizeEmail(event.PayerEmail)
	plan := strings.ToUpper(strings.TrimSpace(event.Plan))
	if plan == "" {
		plan = userModel.PlanPlus
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		seen, err := repo.EventExists(ctx, event.ID)
		if err != nil || seen {
			return err
		}
		if err := repo.CreateEvent(ctx, &paymentModel.Event{
			EventID:    event.ID,
			Type:       event.Type,
			PayerEmail: email,
			Plan:       plan,
			Payload:    datatypes.JSON(event.Payload),
		}); err != nil {
			return err
		}

		if email == "" {
			return nil
		}
		found, err := repo.UpdatePlanByEmail(ctx, email, plan)
		if err != nil {
			return err
		}
		if !found {
			slog.WarnContext(ctx, "payment for unknown email ignored", "event_id", event.ID)
		}
		return nil
	})
	if err != nil {
		return response.NewInternalError("failed to process payment event", err)
	}
	return nil
}
