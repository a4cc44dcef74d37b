package announcement

import (
	"context"

	announcementModel "mindmeter/internal/model/announcement"

	"gorm.io/gorm"
)

type AnnouncementRepository interface {
	List(ctx context.Context, activeOnly bool) ([]announcementModel.Announcement, error)
	GetByID(ctx context.Context, id uint) (*announcementModel.Announcement, error)
	Create(ctx context.Context, a *announcementModel.Announcement) error
	Save(ctx context.Context, a *announcementModel.Announcement) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// List 按创建时间倒序
func (r *announcementRepository) List(ctx context.Context, activeOnly bool) ([]announcementModel.Announcement, error) {
	var items []announcementModel.Announcement
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&items).Error
	return items, err
}

func (r *announcementRepository) GetByID(ctx context.Context, id uint) (*announcementModel.Announcement, error) {
	var a announcementModel.Announcement
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepository) Create(ctx context.Context, a *announcementModel.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepository) Save(ctx context.Context, a *announcementModel.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *announcementRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&announcementModel.Announcement{}, id)
	return result.RowsAffected > 0, result.Error
}
