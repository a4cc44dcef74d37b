package assessment

import (
	"context"

	"mindmeter/internal/model/testresult"

	"gorm.io/gorm"
)

// SubmissionRepository 测评结果数据访问接口
type SubmissionRepository interface {
	WithTx(tx *gorm.DB) SubmissionRepository

	CreateResult(ctx context.Context, r *testresult.TestResult) error
	CreateAnswer(ctx context.Context, a *testresult.Answer) error

	ListByUser(ctx context.Context, userID uint) ([]ResultRow, error)
	ListAll(ctx context.Context) ([]ResultRow, error)
	ListBySeverity(ctx context.Context, level testresult.SeverityLevel) ([]ResultRow, error)
	Recent(ctx context.Context, limit int) ([]ResultRow, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Answers(ctx context.Context, resultID uint) ([]AnswerDTO, error)

	DeleteAnswers(ctx context.Context, resultID uint) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) WithTx(tx *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: tx}
}

func (r *submissionRepository) CreateResult(ctx context.Context, res *testresult.TestResult) error {
	return r.db.WithContext(ctx).Omit("Answers").Create(res).Error
}

func (r *submissionRepository) CreateAnswer(ctx context.Context, a *testresult.Answer) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// rows 结果列表统一按时间倒序，用户被删除时姓名和邮箱为空
func (r *submissionRepository) rows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("depression_test_results AS r").
		Select("r.id, r.user_id, r.total_score, r.diagnosis, r.severity_level, r.recommendation, r.test_type, r.tested_at, " +
			"COALESCE(u.first_name, '') AS first_name, COALESCE(u.last_name, '') AS last_name, u.email").
		Joins("LEFT JOIN users u ON u.id = r.user_id").
		Order("r.tested_at DESC").
		Order("r.id DESC")
}

func (r *submissionRepository) ListByUser(ctx context.Context, userID uint) ([]ResultRow, error) {
	var rows []ResultRow
	err := r.rows(ctx).Where("r.user_id = ?", userID).Scan(&rows).Error
	return rows, err
}

func (r *submissionRepository) ListAll(ctx context.Context) ([]ResultRow, error) {
	var rows []ResultRow
	err := r.rows(ctx).Scan(&rows).Error
	return rows, err
}

func (r *submissionRepository) ListBySeverity(ctx context.Context, level testresult.SeverityLevel) ([]ResultRow, error) {
	var rows []ResultRow
	err := r.rows(ctx).Where("r.severity_level = ?", level).Scan(&rows).Error
	return rows, err
}

func (r *submissionRepository) Recent(ctx context.Context, limit int) ([]ResultRow, error) {
	var rows []ResultRow
	err := r.rows(ctx).Limit(limit).Scan(&rows).Error
	return rows, err
}

func (r *submissionRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&testresult.TestResult{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *submissionRepository) Answers(ctx context.Context, resultID uint) ([]AnswerDTO, error) {
	var answers []AnswerDTO
	err := r.db.WithContext(ctx).
		Table("depression_test_answers AS a").
		Select("a.question_id, COALESCE(q.question_text, '') AS question_text, a.answer_value").
		Joins("LEFT JOIN depression_questions q ON q.id = a.question_id").
		Where("a.test_result_id = ?", resultID).
		Order("a.id ASC").
		Scan(&answers).Error
	return answers, err
}

func (r *submissionRepository) DeleteAnswers(ctx context.Context, resultID uint) error {
	return r.db.WithContext(ctx).Where("test_result_id = ?", resultID).Delete(&testresult.Answer{}).Error
}

func (r *submissionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&testresult.TestResult{}, id)
	return result.RowsAffected > 0, result.Error
}
