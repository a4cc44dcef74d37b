package payment

import (
	"context"

	paymentModel "mindmeter/internal/model/payment"
	userModel "mindmeter/internal/model/user"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	WithTx(tx *gorm.DB) PaymentRepository

	EventExists(ctx context.Context, eventID string) (bool, error)
	CreateEvent(ctx context.Context, e *paymentModel.Event) error
	UpdatePlanByEmail(ctx context.Context, email, plan string) (bool, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) WithTx(tx *gorm.DB) PaymentRepository {
	return &paymentRepository{db: tx}
}

func (r *paymentRepository) EventExists(ctx context.Context, eventID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&paymentModel.Event{}).Where("event_id = ?", eventID).Count(&count).Error
	return count > 0, err
}

func (r *paymentRepository) CreateEvent(ctx context.Context, e *paymentModel.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// UpdatePlanByEmail 返回是否找到了对应用户
func (r *paymentRepository) UpdatePlanByEmail(ctx context.Context, email, plan string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&userModel.User{}).Where("email = ?", email).Update("plan", plan)
	return result.RowsAffected > 0, result.Error
}
