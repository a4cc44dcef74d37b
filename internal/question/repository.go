package question

import (
	"context"

	questionModel "mindmeter/internal/model/question"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// order 是保留字，统一通过 clause 引用
var byOrder = clause.OrderByColumn{Column: clause.Column{Name: "order"}}

// QuestionRepository 题库数据访问接口
type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository

	ListActive(ctx context.Context, testKey string) ([]questionModel.Question, error)
	ActiveCategories(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]questionModel.Question, error)
	GetByID(ctx context.Context, id uint) (*questionModel.Question, error)
	Options(ctx context.Context, questionID uint) ([]questionModel.Option, error)

	Create(ctx context.Context, q *questionModel.Question) error
	UpdateFields(ctx context.Context, q *questionModel.Question) error
	SetActive(ctx context.Context, id uint, active bool) error
	DeleteOptions(ctx context.Context, questionID uint) error
	CreateOptions(ctx context.Context, opts []questionModel.Option) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func preloadOptions(db *gorm.DB) *gorm.DB {
	return db.Order(byOrder).Order("id ASC")
}

// ListActive testKey 为空时返回所有题型
func (r *questionRepository) ListActive(ctx context.Context, testKey string) ([]questionModel.Question, error) {
	var qs []questionModel.Question
	query := r.db.WithContext(ctx).Preload("Options", preloadOptions).Where("is_active = ?", true)
	if testKey != "" {
		query = query.Where("test_key = ?", testKey)
	}
	err := query.Order(byOrder).Order("id ASC").Find(&qs).Error
	return qs, err
}

func (r *questionRepository) ActiveCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&questionModel.Question{}).
		Where("is_active = ? AND category IS NOT NULL AND category <> ''", true).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *questionRepository) List(ctx context.Context) ([]questionModel.Question, error) {
	var qs []questionModel.Question
	err := r.db.WithContext(ctx).Preload("Options", preloadOptions).Order(byOrder).Order("id ASC").Find(&qs).Error
	return qs, err
}

func (r *questionRepository) GetByID(ctx context.Context, id uint) (*questionModel.Question, error) {
	var q questionModel.Question
	if err := r.db.WithContext(ctx).Preload("Options", preloadOptions).First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) Options(ctx context.Context, questionID uint) ([]questionModel.Option, error) {
	var opts []questionModel.Option
	err := preloadOptions(r.db.WithContext(ctx)).Where("question_id = ?", questionID).Find(&opts).Error
	return opts, err
}

// Create 连同 Options 一起插入
func (r *questionRepository) Create(ctx context.Context, q *questionModel.Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// UpdateFields 只更新题目本身，不处理选项
func (r *questionRepository) UpdateFields(ctx context.Context, q *questionModel.Question) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(q).Error
}

func (r *questionRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).Model(&questionModel.Question{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *questionRepository) DeleteOptions(ctx context.Context, questionID uint) error {
	return r.db.WithContext(ctx).Where("question_id = ?", questionID).Delete(&questionModel.Option{}).Error
}

func (r *questionRepository) CreateOptions(ctx context.Context, opts []questionModel.Option) error {
	if len(opts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&opts).Error
}

func (r *questionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&questionModel.Question{}, id)
	return result.RowsAffected > 0, result.Error
}
