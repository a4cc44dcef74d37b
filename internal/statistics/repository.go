package statistics

import (
	"context"
	"slices"
	"strings"
	"time"

	adviceModel "mindmeter/internal/model/advice"
	questionModel "mindmeter/internal/model/question"
	"mindmeter/internal/model/testresult"
	userModel "mindmeter/internal/model/user"

	"gorm.io/gorm"
)

type StatisticsRepository interface {
	CountUsersByRole(ctx context.Context) (map[string]int64, error)
	CountTestsBySeverity(ctx context.Context) (map[string]int64, error)
	CountQuestions(ctx context.Context) (total, active int64, err error)
	CountAdvices(ctx context.Context) (int64, error)

	// 时间窗口为 [from, to)，按 from 所在时区的自然日分组
	TestsPerDay(ctx context.Context, from, to time.Time) ([]DayCount, error)
	SevereTestsPerDay(ctx context.Context, from, to time.Time) ([]DayCount, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) groupBy(ctx context.Context, model any, column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).Model(model).
		Select(column + " AS label, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Label] = row.Count
	}
	return out, nil
}

func (r *statisticsRepository) CountUsersByRole(ctx context.Context) (map[string]int64, error) {
	return r.groupBy(ctx, &userModel.User{}, "role")
}

func (r *statisticsRepository) CountTestsBySeverity(ctx context.Context) (map[string]int64, error) {
	return r.groupBy(ctx, &testresult.TestResult{}, "severity_level")
}

func (r *statisticsRepository) CountQuestions(ctx context.Context) (total, active int64, err error) {
	db := r.db.WithContext(ctx)
	if err = db.Model(&questionModel.Question{}).Count(&total).Error; err != nil {
		return
	}
	err = db.Model(&questionModel.Question{}).Where("is_active = ?", true).Count(&active).Error
	return
}

func (r *statisticsRepository) CountAdvices(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&adviceModel.Message{}).Count(&count).Error
	return count, err
}

func (r *statisticsRepository) TestsPerDay(ctx context.Context, from, to time.Time) ([]DayCount, error) {
	return r.perDay(r.db.WithContext(ctx), from, to)
}

func (r *statisticsRepository) SevereTestsPerDay(ctx context.Context, from, to time.Time) ([]DayCount, error) {
	return r.perDay(r.db.WithContext(ctx).Where("severity_level = ?", testresult.SeveritySevere), from, to)
}

// perDay 按 from 所在时区的自然日分组，不依赖数据库的 DATE() 和会话时区
func (r *statisticsRepository) perDay(query *gorm.DB, from, to time.Time) ([]DayCount, error) {
	var testedAt []time.Time
	err := query.Model(&testresult.TestResult{}).
		Where("tested_at >= ? AND tested_at < ?", from.UTC(), to.UTC()).
		Pluck("tested_at", &testedAt).Error
	if err != nil {
		return nil, err
	}

	loc := from.Location()
	counts := make(map[string]int64)
	for _, t := range testedAt {
		counts[t.In(loc).Format(dateLayout)]++
	}

	rows := make([]DayCount, 0, len(counts))
	for day, n := range counts {
		rows = append(rows, DayCount{Day: day, Count: n})
	}
	slices.SortFunc(rows, func(a, b DayCount) int { return strings.Compare(a.Day, b.Day) })
	return rows, nil
}
