package announcement

import (
	"context"
	"testing"
	"time"

	announcementModel "mindmeter/internal/model/announcement"
	"mindmeter/internal/testutils"
	"mindmeter/packages/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAnnouncementService(t *testing.T) (AnnouncementService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	return NewAnnouncementService(NewAnnouncementRepository(db)), db
}

func TestAnnouncementService_Create(t *testing.T) {
	service, _ := setupAnnouncementService(t)
	ctx := context.Background()
	inactive := false

	tests := []struct {
		name       string
		req        AnnouncementRequest
		wantType   announcementModel.Type
		wantActive bool
		wantCode   response.ResponseCode
		wantErr    bool
	}{
		{name: "defaults", req: AnnouncementRequest{Title: "Lịch nghỉ", Content: "..."}, wantType: announcementModel.TypeInfo, wantActive: true},
		{name: "explicit type", req: AnnouncementRequest{Title: "Bảo trì", Content: "...", AnnouncementType: "warning", IsActive: &inactive}, wantType: announcementModel.TypeWarning},
		{name: "unknown type", req: AnnouncementRequest{Title: "x", Content: "y", AnnouncementType: "PARTY"}, wantErr: true, wantCode: response.InvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := service.Create(ctx, &tt.req)
			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, tt.wantCode, err.Code)
				return
			}
			require.Nil(t, err)
			assert.NotZero(t, a.ID)
			assert.Equal(t, tt.wantType, a.AnnouncementType)
			assert.Equal(t, tt.wantActive, a.IsActive)
		})
	}
}

func TestAnnouncementService_ActiveNewestFirst(t *testing.T) {
	service, db := setupAnnouncementService(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	seed := []announcementModel.Announcement{
		{Title: "old", Content: "c", AnnouncementType: announcementModel.TypeInfo, IsActive: true, CreatedAt: base},
		{Title: "hidden", Content: "c", AnnouncementType: announcementModel.TypeInfo, IsActive: false, CreatedAt: base.Add(time.Hour)},
		{Title: "new", Content: "c", AnnouncementType: announcementModel.TypeGuide, IsActive: true, CreatedAt: base.Add(2 * time.Hour)},
	}
	require.NoError(t, db.Create(&seed).Error)

	active, err := service.Active(ctx)
	require.Nil(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "new", active[0].Title)
	assert.Equal(t, "old", active[1].Title)

	all, err := service.List(ctx)
	require.Nil(t, err)
	assert.Len(t, all, 3)
}

func TestAnnouncementService_UpdateToggleDelete(t *testing.T) {
	service, _ := setupAnnouncementService(t)
	ctx := context.Background()

	a, err := service.Create(ctx, &AnnouncementRequest{Title: "t", Content: "c"})
	require.Nil(t, err)

	updated, err := service.Update(ctx, a.ID, &AnnouncementRequest{Title: "t2", Content: "c2", AnnouncementType: "URGENT"})
	require.Nil(t, err)
	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, announcementModel.TypeUrgent, updated.AnnouncementType)
	assert.True(t, updated.IsActive)

	toggled, err := service.Toggle(ctx, a.ID)
	require.Nil(t, err)
	assert.False(t, toggled.IsActive)

	active, err := service.Active(ctx)
	require.Nil(t, err)
	assert.Empty(t, active)

	require.Nil(t, service.Delete(ctx, a.ID))

	_, err = service.Toggle(ctx, a.ID)
	require.NotNil(t, err)
	assert.Equal(t, response.NotFound, err.Code)

	err = service.Delete(ctx, a.ID)
	require.NotNil(t, err)
	assert.Equal(t, response.NotFound, err.Code)
}
