package question

import (
	"context"
	"testing"

	questionModel "mindmeter/internal/model/question"
	"mindmeter/internal/testutils"
	"mindmeter/packages/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupQuestionService(t *testing.T) (QuestionService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	return NewQuestionService(db, NewQuestionRepository(db)), db
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestQuestionService_CreateDefaults(t *testing.T) {
	service, _ := setupQuestionService(t)

	q, err := service.Create(context.Background(), &QuestionRequest{
		QuestionText: "Tôi thấy khó bình tĩnh lại",
		Options: []OptionRequest{
			{OptionText: "Không đúng", OptionValue: 0},
			{OptionText: "Đúng một phần", OptionValue: 1},
		},
	})
	require.Nil(t, err)

	assert.Equal(t, 1, q.Weight)
	assert.Equal(t, 1, q.Order)
	assert.True(t, q.IsActive)
	assert.Equal(t, questionModel.DefaultTestKey, q.TestKey)
	require.Len(t, q.Options, 2)
	assert.Equal(t, 1, q.Options[0].Order)
	assert.Equal(t, 2, q.Options[1].Order)
}

func TestQuestionService_CreateExplicitInactive(t *testing.T) {
	service, db := setupQuestionService(t)

	q, err := service.Create(context.Background(), &QuestionRequest{
		QuestionText: "Inactive",
		IsActive:     boolPtr(false),
		Weight:       intPtr(3),
		TestKey:      "BDI",
	})
	require.Nil(t, err)

	var stored questionModel.Question
	require.NoError(t, db.First(&stored, q.ID).Error)
	assert.False(t, stored.IsActive)
	assert.Equal(t, 3, stored.Weight)
	assert.Equal(t, "BDI", stored.TestKey)
}

func TestQuestionService_DuplicateOptionOrder(t *testing.T) {
	service, _ := setupQuestionService(t)

	_, err := service.Create(context.Background(), &QuestionRequest{
		QuestionText: "dup",
		Options: []OptionRequest{
			{OptionText: "a", Order: intPtr(1)},
			{OptionText: "b", Order: intPtr(1)},
		},
	})
	require.NotNil(t, err)
	assert.Equal(t, response.InvalidParameter, err.Code)
}

func TestQuestionService_ListActive(t *testing.T) {
	service, db := setupQuestionService(t)
	ctx := context.Background()

	dass := testutils.CreateTestQuestion(db, "DASS-21", 2, 0, 1)
	testutils.CreateTestQuestion(db, "BDI", 0, 1)
	inactive := testutils.CreateTestQuestion(db, "DASS-21", 0)
	require.NoError(t, db.Model(&questionModel.Question{ID: inactive.ID}).Update("is_active", false).Error)

	tests := []struct {
		name    string
		testKey string
		wantLen int
	}{
		{name: "all test keys", testKey: "", wantLen: 2},
		{name: "filtered by key", testKey: "DASS-21", wantLen: 1},
		{name: "unknown key", testKey: "PHQ-9", wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := service.ListActive(ctx, tt.testKey)
			require.Nil(t, err)
			assert.Len(t, qs, tt.wantLen)
		})
	}

	qs, err := service.ListActive(ctx, "DASS-21")
	require.Nil(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, dass.ID, qs[0].ID)

	// 选项按 order 升序
	require.Len(t, qs[0].Options, 3)
	for i, o := range qs[0].Options {
		assert.Equal(t, i+1, o.Order)
	}
}

func TestQuestionService_ActiveCategories(t *testing.T) {
	service, db := setupQuestionService(t)

	q1 := testutils.CreateTestQuestion(db, "DASS-21", 0)
	q2 := testutils.CreateTestQuestion(db, "DASS-21", 0)
	q3 := testutils.CreateTestQuestion(db, "DASS-21", 0)
	q4 := testutils.CreateTestQuestion(db, "DASS-21", 0)
	require.NoError(t, db.Model(&questionModel.Question{ID: q1.ID}).Update("category", "anxiety").Error)
	require.NoError(t, db.Model(&questionModel.Question{ID: q2.ID}).Update("category", "stress").Error)
	require.NoError(t, db.Model(&questionModel.Question{ID: q3.ID}).Update("category", "").Error)
	require.NoError(t, db.Model(&questionModel.Question{ID: q4.ID}).Updates(map[string]any{"category": "hidden", "is_active": false}).Error)

	categories, err := service.ActiveCategories(context.Background())
	require.Nil(t, err)
	assert.Equal(t, []string{"anxiety", "stress"}, categories)
}

func TestQuestionService_UpdateReplacesOptions(t *testing.T) {
	service, db := setupQuestionService(t)
	ctx := context.Background()

	q := testutils.CreateTestQuestion(db, "DASS-21", 0, 1, 2, 3)

	updated, err := service.Update(ctx, q.ID, &QuestionRequest{
		QuestionText: "Updated text",
		Category:     "stress",
		Order:        intPtr(5),
		IsActive:     boolPtr(false),
		Options: []OptionRequest{
			{OptionText: "Yes", OptionValue: 3, Order: intPtr(2)},
			{OptionText: "No", OptionValue: 0, Order: intPtr(1)},
		},
	})
	require.Nil(t, err)
	assert.Equal(t, "Updated text", updated.QuestionText)
	assert.False(t, updated.IsActive)

	var count int64
	require.NoError(t, db.Model(&questionModel.Option{}).Where("question_id = ?", q.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	opts, err := service.Options(ctx, q.ID)
	require.Nil(t, err)
	require.Len(t, opts, 2)
	assert.Equal(t, "No", opts[0].OptionText)
	assert.Equal(t, "Yes", opts[1].OptionText)

	_, err = service.Update(ctx, 99999, &QuestionRequest{QuestionText: "x"})
	require.NotNil(t, err)
	assert.Equal(t, response.NotFound, err.Code)
}

func TestQuestionService_UpdateRejectsDuplicateOrderBeforeWriting(t *testing.T) {
	service, db := setupQuestionService(t)

	q := testutils.CreateTestQuestion(db, "DASS-21", 0, 1)

	_, err := service.Update(context.Background(), q.ID, &QuestionRequest{
		QuestionText: "changed",
		Options: []OptionRequest{
			{OptionText: "a", Order: intPtr(2)},
			{OptionText: "b", Order: intPtr(2)},
		},
	})
	require.NotNil(t, err)
	assert.Equal(t, response.InvalidParameter, err.Code)

	var stored questionModel.Question
	require.NoError(t, db.Preload("Options").First(&stored, q.ID).Error)
	assert.Equal(t, q.QuestionText, stored.QuestionText)
	assert.Len(t, stored.Options, 2)
}

func TestQuestionService_ToggleAndDelete(t *testing.T) {
	service, db := setupQuestionService(t)
	ctx := context.Background()

	q := testutils.CreateTestQuestion(db, "DASS-21", 0, 1)

	toggled, err := service.Toggle(ctx, q.ID)
	require.Nil(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = service.Toggle(ctx, q.ID)
	require.Nil(t, err)
	assert.True(t, toggled.IsActive)

	_, err = service.Toggle(ctx, 99999)
	require.NotNil(t, err)
	assert.Equal(t, response.NotFound, err.Code)

	require.Nil(t, service.Delete(ctx, q.ID))

	var count int64
	require.NoError(t, db.Model(&questionModel.Option{}).Where("question_id = ?", q.ID).Count(&count).Error)
	assert.Zero(t, count)

	err = service.Delete(ctx, q.ID)
	require.NotNil(t, err)
	assert.Equal(t, response.NotFound, err.Code)
}
