package advice

import (
	"context"

	adviceModel "mindmeter/internal/model/advice"

	"gorm.io/gorm"
)

type AdviceRepository interface {
	Create(ctx context.Context, m *adviceModel.Message) error
	GetByID(ctx context.Context, id uint) (*adviceModel.Message, error)
	Received(ctx context.Context, receiverID uint) ([]messageRow, error)
	Sent(ctx context.Context, senderID uint) ([]adviceModel.Message, error)
	CountUnread(ctx context.Context, receiverID uint) (int64, error)
	MarkRead(ctx context.Context, id uint) error
}

type adviceRepository struct {
	db *gorm.DB
}

func NewAdviceRepository(db *gorm.DB) AdviceRepository {
	return &adviceRepository{db: db}
}

func (r *adviceRepository) Create(ctx context.Context, m *adviceModel.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *adviceRepository) GetByID(ctx context.Context, id uint) (*adviceModel.Message, error) {
	var m adviceModel.Message
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *adviceRepository) Received(ctx context.Context, receiverID uint) ([]messageRow, error) {
	var rows []messageRow
	err := r.db.WithContext(ctx).
		Table("advice_messages AS m").
		Select("m.*, COALESCE(u.first_name, '') AS sender_first_name, COALESCE(u.last_name, '') AS sender_last_name").
		Joins("LEFT JOIN users u ON u.id = m.sender_id").
		Where("m.receiver_id = ?", receiverID).
		Order("m.sent_at DESC").
		Order("m.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *adviceRepository) Sent(ctx context.Context, senderID uint) ([]adviceModel.Message, error) {
	var msgs []adviceModel.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("sent_at DESC").
		Order("id DESC").
		Find(&msgs).Error
	return msgs, err
}

func (r *adviceRepository) CountUnread(ctx context.Context, receiverID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&adviceModel.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error
	return count, err
}

func (r *adviceRepository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&adviceModel.Message{}).Where("id = ?", id).Update("is_read", true).Error
}
