package statistics

import (
	"context"
	"testing"
	"time"

	"mindmeter/internal/model/testresult"
	userModel "mindmeter/internal/model/user"
	"mindmeter/internal/testutils"
	"mindmeter/packages/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStatisticsService(t *testing.T, now time.Time) (*statisticsService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	svc := NewStatisticsService(NewStatisticsRepository(db)).(*statisticsService)
	svc.now = func() time.Time { return now }
	return svc, db
}

func noon(day int) time.Time {
	return time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC)
}

func TestStatisticsService_SystemStatistics(t *testing.T) {
	service, db := setupStatisticsService(t, noon(10))
	ctx := context.Background()

	t.Run("empty system has no percentages", func(t *testing.T) {
		stats, err := service.SystemStatistics(ctx)
		require.Nil(t, err)
		assert.Zero(t, stats.TotalTests)
		assert.Nil(t, stats.SeverePercentage)
		assert.Nil(t, stats.MinimalPercentage)
	})

	student := testutils.CreateTestUser(db)
	testutils.CreateTestUser(db)
	expert := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExpert))
	testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleAdmin))

	testutils.CreateTestResult(db, student.ID, testresult.SeverityMinimal, noon(1))
	testutils.CreateTestResult(db, student.ID, testresult.SeverityMild, noon(2))
	testutils.CreateTestResult(db, student.ID, testresult.SeveritySevere, noon(3))
	testutils.CreateTestResult(db, student.ID, testresult.SeveritySevere, noon(4))

	q := testutils.CreateTestQuestion(db, "DASS-21", 0, 1)
	testutils.CreateTestQuestion(db, "DASS-21", 0, 1)
	require.NoError(t, db.Exec("UPDATE depression_questions SET is_active = ? WHERE id = ?", false, q.ID).Error)

	testutils.CreateTestAdvice(db, expert.ID, student.ID, noon(5))

	stats, err := service.SystemStatistics(ctx)
	require.Nil(t, err)

	assert.Equal(t, int64(4), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.StudentCount)
	assert.Equal(t, int64(1), stats.ExpertCount)
	assert.Equal(t, int64(1), stats.AdminCount)

	assert.Equal(t, int64(4), stats.TotalTests)
	assert.Equal(t, int64(1), stats.MinimalTests)
	assert.Equal(t, int64(1), stats.MildTests)
	assert.Zero(t, stats.ModerateTests)
	assert.Equal(t, int64(2), stats.SevereTests)

	require.NotNil(t, stats.SeverePercentage)
	assert.InDelta(t, 50.0, *stats.SeverePercentage, 0.001)
	require.NotNil(t, stats.ModeratePercentage)
	assert.InDelta(t, 0.0, *stats.ModeratePercentage, 0.001)

	assert.Equal(t, int64(2), stats.TotalQuestions)
	assert.Equal(t, int64(1), stats.ActiveQuestions)
	assert.Equal(t, int64(1), stats.TotalAdvices)
}

func TestStatisticsService_TestCountByDate(t *testing.T) {
	service, db := setupStatisticsService(t, time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC))
	ctx := context.Background()

	u := testutils.CreateTestUser(db)
	testutils.CreateTestResult(db, u.ID, testresult.SeverityMild, noon(8))
	testutils.CreateTestResult(db, u.ID, testresult.SeveritySevere, noon(10))
	testutils.CreateTestResult(db, u.ID, testresult.SeveritySevere, noon(10).Add(time.Hour))
	testutils.CreateTestResult(db, u.ID, testresult.SeverityMinimal, noon(10).Add(-time.Hour))
	// 窗口之外
	testutils.CreateTestResult(db, u.ID, testresult.SeveritySevere, noon(5))
	testutils.CreateTestResult(db, u.ID, testresult.SeveritySevere, noon(11))

	result, err := service.TestCountByDate(ctx, 3)
	require.Nil(t, err)

	assert.Equal(t, []string{"2026-03-08", "2026-03-09", "2026-03-10"}, result.Dates)
	assert.Equal(t, []int64{1, 0, 3}, result.TotalTests)
	assert.Equal(t, []int64{0, 0, 2}, result.SevereTests)

	t.Run("default window length", func(t *testing.T) {
		result, err := service.TestCountByDate(ctx, DefaultDays)
		require.Nil(t, err)
		require.Len(t, result.Dates, DefaultDays)
		assert.Equal(t, "2026-02-25", result.Dates[0])
		assert.Equal(t, "2026-03-10", result.Dates[DefaultDays-1])

		var total int64
		for _, n := range result.TotalTests {
			total += n
		}
		assert.Equal(t, int64(5), total)
	})

	t.Run("days follow the server time zone", func(t *testing.T) {
		ict := time.FixedZone("ICT", 7*3600)
		service, db := setupStatisticsService(t, time.Date(2026, 3, 10, 9, 0, 0, 0, ict))
		u := testutils.CreateTestUser(db)

		// 本地 3 月 10 日 03:00，UTC 仍是 3 月 9 日
		testutils.CreateTestResult(db, u.ID, testresult.SeveritySevere, time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC))
		// 本地 3 月 9 日 23:00
		testutils.CreateTestResult(db, u.ID, testresult.SeverityMild, time.Date(2026, 3, 9, 16, 0, 0, 0, time.UTC))
		// 本地 3 月 11 日 00:30，窗口之外
		testutils.CreateTestResult(db, u.ID, testresult.SeveritySevere, time.Date(2026, 3, 10, 17, 30, 0, 0, time.UTC))

		result, err := service.TestCountByDate(ctx, 2)
		require.Nil(t, err)
		assert.Equal(t, []string{"2026-03-09", "2026-03-10"}, result.Dates)
		assert.Equal(t, []int64{1, 1}, result.TotalTests)
		assert.Equal(t, []int64{0, 1}, result.SevereTests)

		single, err := service.TestCountByDate(ctx, 1)
		require.Nil(t, err)
		assert.Equal(t, []int64{1}, single.TotalTests)
		assert.Equal(t, []int64{1}, single.SevereTests)
	})

	t.Run("invalid days", func(t *testing.T) {
		for _, days := range []int{0, -3} {
			_, err := service.TestCountByDate(ctx, days)
			require.NotNil(t, err)
			assert.Equal(t, response.InvalidParameter, err.Code)
		}
	})
}
