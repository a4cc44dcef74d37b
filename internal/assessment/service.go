package assessment

import (
	"context"
	"log/slog"
	"strings"
	"time"

	questionModel "mindmeter/internal/model/question"
	"mindmeter/internal/model/testresult"
	"mindmeter/internal/scoring"
	"mindmeter/packages/response"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

// RecentLimit 最近结果的最大条数
const RecentLimit = 10

var submissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mindmeter_test_submissions_total",
		Help: "已提交的测评数，按严重程度统计",
	},
	[]string{"severity"},
)

// AssessmentService 测评提交与结果查询
type AssessmentService interface {
	Submit(ctx context.Context, userID uint, req *SubmitRequest) (*SubmitResponse, *response.BusinessError)

	History(ctx context.Context, userID uint) ([]ResultDTO, *response.BusinessError)
	ListAll(ctx context.Context) ([]ResultDTO, *response.BusinessError)
	ListBySeverity(ctx context.Context, level string) ([]ResultDTO, *response.BusinessError)
	ListByStudent(ctx context.Context, studentID uint) ([]ResultDTO, *response.BusinessError)
	Recent(ctx context.Context, limit int) ([]ResultDTO, *response.BusinessError)
	Answers(ctx context.Context, resultID uint) ([]AnswerDTO, *response.BusinessError)
	Delete(ctx context.Context, resultID uint) *response.BusinessError
}

type assessmentService struct {
	db   *gorm.DB
	repo SubmissionRepository
	now  func() time.Time
}

func NewAssessmentService(db *gorm.DB, repo SubmissionRepository) AssessmentService {
	return &assessmentService{db: db, repo: repo, now: time.Now}
}

// Submit 评分后在同一事务内写入结果和每一条作答，任一失败整体回滚。
// 不校验 questionId 是否存在
func (s *assessmentService) Submit(ctx context.Context, userID uint, req *SubmitRequest) (*SubmitResponse, *response.BusinessError) {
	if len(req.Answers) == 0 {
		return nil, response.NewValidationError("answers must not be empty")
	}

	scored := scoring.Score(req.Answers)

	testType := strings.TrimSpace(req.TestType)
	if testType == "" {
		testType = questionModel.DefaultTestKey
	}

	result := &testresult.TestResult{
		UserID:         userID,
		TotalScore:     scored.TotalScore,
		Diagnosis:      scored.Diagnosis,
		SeverityLevel:  scored.SeverityLevel,
		Recommendation: scored.Recommendation,
		TestType:       testType,
		TestedAt:       s.now().UTC(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.CreateResult(ctx, result); err != nil {
			return err
		}
		for _, a := range req.Answers {
			answer := &testresult.Answer{
				TestResultID: result.ID,
				QuestionID:   a.QuestionID,
				AnswerValue:  a.AnswerValue,
			}
			if err := repo.CreateAnswer(ctx, answer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, response.NewInternalError("failed to save test result", err)
	}

	submissionsTotal.WithLabelValues(string(scored.SeverityLevel)).Inc()
	slog.InfoContext(ctx, "test submitted",
		"user_id", userID,
		"result_id", result.ID,
		"severity", scored.SeverityLevel,
	)

	return &SubmitResponse{
		TestResultID:        result.ID,
		TotalScore:          scored.TotalScore,
		Diagnosis:           scored.Diagnosis,
		SeverityLevel:       scored.SeverityLevel,
		Recommendation:      scored.Recommendation,
		TestedAt:            result.TestedAt,
		ShouldContactExpert: scored.ShouldContactExpert,
	}, nil
}

func (s *assessmentService) History(ctx context.Context, userID uint) ([]ResultDTO, *response.BusinessError) {
	return s.list(s.repo.ListByUser(ctx, userID))
}

func (s *assessmentService) ListAll(ctx context.Context) ([]ResultDTO, *response.BusinessError) {
	return s.list(s.repo.ListAll(ctx))
}

func (s *assessmentService) ListBySeverity(ctx context.Context, level string) ([]ResultDTO, *response.BusinessError) {
	severity, bizErr := testresult.ParseSeverityLevel(level)
	if bizErr != nil {
		return nil, bizErr
	}
	return s.list(s.repo.ListBySeverity(ctx, severity))
}

func (s *assessmentService) ListByStudent(ctx context.Context, studentID uint) ([]ResultDTO, *response.BusinessError) {
	return s.list(s.repo.ListByUser(ctx, studentID))
}

// Recent limit 超出 [1, RecentLimit] 时取 RecentLimit
func (s *assessmentService) Recent(ctx context.Context, limit int) ([]ResultDTO, *response.BusinessError) {
	if limit < 1 || limit > RecentLimit {
		limit = RecentLimit
	}
	return s.list(s.repo.Recent(ctx, limit))
}

func (s *assessmentService) Answers(ctx context.Context, resultID uint) ([]AnswerDTO, *response.BusinessError) {
	exists, err := s.repo.Exists(ctx, resultID)
	if err != nil {
		return nil, response.NewInternalError("failed to load test result", err)
	}
	if !exists {
		return nil, response.NewNotFoundError("Test result not found")
	}

	answers, err := s.repo.Answers(ctx, resultID)
	if err != nil {
		return nil, response.NewInternalError("failed to load answers", err)
	}
	if answers == nil {
		answers = []AnswerDTO{}
	}
	return answers, nil
}

// Delete 连同作答一起删除
func (s *assessmentService) Delete(ctx context.Context, resultID uint) *response.BusinessError {
	var deleted bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.DeleteAnswers(ctx, resultID); err != nil {
			return err
		}
		var err error
		deleted, err = repo.Delete(ctx, resultID)
		return err
	})
	if err != nil {
		return response.NewInternalError("failed to delete test result", err)
	}
	if !deleted {
		return response.NewNotFoundError("Test result not found")
	}
	return nil
}

func (s *assessmentService) list(rows []ResultRow, err error) ([]ResultDTO, *response.BusinessError) {
	if err != nil {
		return nil, response.NewInternalError("failed to list test results", err)
	}
	return toResultDTOs(rows), nil
}
