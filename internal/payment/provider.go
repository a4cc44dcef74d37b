package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mindmeter/config"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

const eventCheckoutCompleted = "checkout.session.completed"

// Plan 付费套餐
type Plan struct {
	Code        string
	Name        string
	AmountCents int64
}

// WebhookEvent 验签后的回调事件，PayerEmail 和 Plan 只在结账完成事件中填充
type WebhookEvent struct {
	ID         string
	Type       string
	PayerEmail string
	Plan       string
	Payload    []byte
}

type Provider interface {
	CreateCheckout(ctx context.Context, plan Plan) (string, error)
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

type StripeOptions struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	SuccessURL    string
	CancelURL     string
	Backends      *stripe.Backends
}

// StripeOptionsFromConfig 支付完成后跳回前端定价页
func StripeOptionsFromConfig(cfg *config.AppConfig) StripeOptions {
	pricing := strings.TrimRight(cfg.Frontend.URL, "/") + "/pricing"
	return StripeOptions{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		Currency:      cfg.Stripe.Currency,
		SuccessURL:    pricing + "?success=true",
		CancelURL:     pricing + "?canceled=true",
	}
}

type stripeProvider struct {
	api  *client.API
	opts StripeOptions
}

func NewStripeProvider(opts StripeOptions) Provider {
	api := &client.API{}
	api.Init(opts.SecretKey, opts.Backends)
	return &stripeProvider{api: api, opts: opts}
}

func (p *stripeProvider) CreateCheckout(ctx context.Context, plan Plan) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.opts.SuccessURL),
		CancelURL:  stripe.String(p.opts.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.opts.Currency),
					UnitAmount: stripe.Int64(plan.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(plan.Name),
					},
				},
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("plan", plan.Code)

	s, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return s.URL, nil
}

// ParseWebhook 校验 Stripe-Signature。结账完成事件优先取 customer_details 中的邮箱
func (p *stripeProvider) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.opts.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, err
	}

	out := &WebhookEvent{ID: event.ID, Type: string(event.Type), Payload: payload}
	if out.Type != eventCheckoutCompleted || event.Data == nil {
		return out, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		out.PayerEmail = session.CustomerDetails.Email
	} else {
		out.PayerEmail = session.CustomerEmail
	}
	out.Plan = session.Metadata["plan"]
	return out, nil
}
