package announcement

import (
	"context"
	"errors"

	announcementModel "mindmeter/internal/model/announcement"
	"mindmeter/packages/response"

	"gorm.io/gorm"
)

// AnnouncementService 系统公告
type AnnouncementService interface {
	List(ctx context.Context) ([]announcementModel.Announcement, *response.BusinessError)
	Active(ctx context.Context) ([]announcementModel.Announcement, *response.BusinessError)
	Create(ctx context.Context, req *AnnouncementRequest) (*announcementModel.Announcement, *response.BusinessError)
	Update(ctx context.Context, id uint, req *AnnouncementRequest) (*announcementModel.Announcement, *response.BusinessError)
	Delete(ctx context.Context, id uint) *response.BusinessError
	Toggle(ctx context.Context, id uint) (*announcementModel.Announcement, *response.BusinessError)
}

type announcementService struct {
	repo AnnouncementRepository
}

func NewAnnouncementService(repo AnnouncementRepository) AnnouncementService {
	return &announcementService{repo: repo}
}

func (s *announcementService) List(ctx context.Context) ([]announcementModel.Announcement, *response.BusinessError) {
	return s.list(ctx, false)
}

func (s *announcementService) Active(ctx context.Context) ([]announcementModel.Announcement, *response.BusinessError) {
	return s.list(ctx, true)
}

func (s *announcementService) list(ctx context.Context, activeOnly bool) ([]announcementModel.Announcement, *response.BusinessError) {
	items, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, response.NewInternalError("failed to list announcements", err)
	}
	if items == nil {
		items = []announcementModel.Announcement{}
	}
	return items, nil
}

func (s *announcementService) Create(ctx context.Context, req *AnnouncementRequest) (*announcementModel.Announcement, *response.BusinessError) {
	a := &announcementModel.Announcement{IsActive: true}
	if bizErr := apply(a, req); bizErr != nil {
		return nil, bizErr
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, response.NewInternalError("failed to create announcement", err)
	}
	return a, nil
}

func (s *announcementService) Update(ctx context.Context, id uint, req *AnnouncementRequest) (*announcementModel.Announcement, *response.BusinessError) {
	a, bizErr := s.load(ctx, id)
	if bizErr != nil {
		return nil, bizErr
	}
	if bizErr := apply(a, req); bizErr != nil {
		return nil, bizErr
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, response.NewInternalError("failed to update announcement", err)
	}
	return a, nil
}

func (s *announcementService) Delete(ctx context.Context, id uint) *response.BusinessError {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return response.NewInternalError("failed to delete announcement", err)
	}
	if !deleted {
		return response.NewNotFoundError("Announcement not found")
	}
	return nil
}

func (s *announcementService) Toggle(ctx context.Context, id uint) (*announcementModel.Announcement, *response.BusinessError) {
	a, bizErr := s.load(ctx, id)
	if bizErr != nil {
		return nil, bizErr
	}
	a.IsActive = !a.IsActive
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, response.NewInternalError("failed to toggle announcement", err)
	}
	return a, nil
}

func (s *announcementService) load(ctx context.Context, id uint) (*announcementModel.Announcement, *response.BusinessError) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Announcement not found")
		}
		return nil, response.NewInternalError("failed to load announcement", err)
	}
	return a, nil
}

// apply isActive 未传时保持原值，新建公告默认启用
func apply(a *announcementModel.Announcement, req *AnnouncementRequest) *response.BusinessError {
	kind, bizErr := announcementModel.ParseType(req.AnnouncementType)
	if bizErr != nil {
		return bizErr
	}
	a.Title = req.Title
	a.Content = req.Content
	a.AnnouncementType = kind
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	return nil
}
