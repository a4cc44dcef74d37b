package statistics

import (
	"context"
	"time"

	"mindmeter/internal/model/testresult"
	userModel "mindmeter/internal/model/user"
	"mindmeter/packages/response"
)

// DefaultDays 按日统计的默认天数
const DefaultDays = 14

const dateLayout = "2006-01-02"

type StatisticsService interface {
	SystemStatistics(ctx context.Context) (*SystemStatistics, *response.BusinessError)
	TestCountByDate(ctx context.Context, days int) (*TestCountByDate, *response.BusinessError)
}

type statisticsService struct {
	repo StatisticsRepository
	now  func() time.Time
}

func NewStatisticsService(repo StatisticsRepository) StatisticsService {
	return &statisticsService{repo: repo, now: time.Now}
}

func (s *statisticsService) SystemStatistics(ctx context.Context) (*SystemStatistics, *response.BusinessError) {
	roles, err := s.repo.CountUsersByRole(ctx)
	if err != nil {
		return nil, response.NewInternalError("failed to count users", err)
	}
	severities, err := s.repo.CountTestsBySeverity(ctx)
	if err != nil {
		return nil, response.NewInternalError("failed to count tests", err)
	}
	totalQuestions, activeQuestions, err := s.repo.CountQuestions(ctx)
	if err != nil {
		return nil, response.NewInternalError("failed to count questions", err)
	}
	advices, err := s.repo.CountAdvices(ctx)
	if err != nil {
		return nil, response.NewInternalError("failed to count advices", err)
	}

	stats := &SystemStatistics{
		StudentCount:    roles[string(userModel.RoleStudent)],
		ExpertCount:     roles[string(userModel.RoleExpert)],
		AdminCount:      roles[string(userModel.RoleAdmin)],
		MinimalTests:    severities[string(testresult.SeverityMinimal)],
		MildTests:       severities[string(testresult.SeverityMild)],
		ModerateTests:   severities[string(testresult.SeverityModerate)],
		SevereTests:     severities[string(testresult.SeveritySevere)],
		TotalQuestions:  totalQuestions,
		ActiveQuestions: activeQuestions,
		TotalAdvices:    advices,
	}
	for _, n := range roles {
		stats.TotalUsers += n
	}
	for _, n := range severities {
		stats.TotalTests += n
	}

	if stats.TotalTests > 0 {
		stats.MinimalPercentage = percentage(stats.MinimalTests, stats.TotalTests)
		stats.MildPercentage = percentage(stats.MildTests, stats.TotalTests)
		stats.ModeratePercentage = percentage(stats.ModerateTests, stats.TotalTests)
		stats.SeverePercentage = percentage(stats.SevereTests, stats.TotalTests)
	}
	return stats, nil
}

// TestCountByDate 统计最近 days 天（含今天）每天的测评数和重度测评数
func (s *statisticsService) TestCountByDate(ctx context.Context, days int) (*TestCountByDate, *response.BusinessError) {
	if days < 1 {
		return nil, response.NewValidationError("days must be at least 1")
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -(days - 1))
	to := today.AddDate(0, 0, 1)

	totals, err := s.repo.TestsPerDay(ctx, from, to)
	if err != nil {
		return nil, response.NewInternalError("failed to count tests by date", err)
	}
	severe, err := s.repo.SevereTestsPerDay(ctx, from, to)
	if err != nil {
		return nil, response.NewInternalError("failed to count severe tests by date", err)
	}

	totalByDay := byDay(totals)
	severeByDay := byDay(severe)

	result := &TestCountByDate{
		Dates:       make([]string, 0, days),
		TotalTests:  make([]int64, 0, days),
		SevereTests: make([]int64, 0, days),
	}
	for i := 0; i < days; i++ {
		key := from.AddDate(0, 0, i).Format(dateLayout)
		result.Dates = append(result.Dates, key)
		result.TotalTests = append(result.TotalTests, totalByDay[key])
		result.SevereTests = append(result.SevereTests, severeByDay[key])
	}
	return result, nil
}

func byDay(rows []DayCount) map[string]int64 {
	m := make(map[string]int64, len(rows))
	for _, r := range rows {
		m[r.Day] = r.Count
	}
	return m
}

func percentage(part, total int64) *float64 {
	p := float64(part) / float64(total) * 100
	return &p
}
