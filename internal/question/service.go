package question

import (
	"context"
	"errors"
	"strconv"
	"strings"

	questionModel "mindmeter/internal/model/question"
	"mindmeter/packages/response"

	"gorm.io/gorm"
)

// QuestionService 题库管理
type QuestionService interface {
	ListActive(ctx context.Context, testKey string) ([]QuestionDTO, *response.BusinessError)
	ActiveCategories(ctx context.Context) ([]string, *response.BusinessError)

	List(ctx context.Context) ([]QuestionDTO, *response.BusinessError)
	Create(ctx context.Context, req *QuestionRequest) (*QuestionDTO, *response.BusinessError)
	Update(ctx context.Context, id uint, req *QuestionRequest) (*QuestionDTO, *response.BusinessError)
	Delete(ctx context.Context, id uint) *response.BusinessError
	Toggle(ctx context.Context, id uint) (*QuestionDTO, *response.BusinessError)
	Options(ctx context.Context, id uint) ([]OptionDTO, *response.BusinessError)
}

type questionService struct {
	db   *gorm.DB
	repo QuestionRepository
}

func NewQuestionService(db *gorm.DB, repo QuestionRepository) QuestionService {
	return &questionService{db: db, repo: repo}
}

func (s *questionService) ListActive(ctx context.Context, testKey string) ([]QuestionDTO, *response.BusinessError) {
	qs, err := s.repo.ListActive(ctx, strings.TrimSpace(testKey))
	if err != nil {
		return nil, response.NewInternalError("failed to list questions", err)
	}
	return toDTOs(qs), nil
}

func (s *questionService) ActiveCategories(ctx context.Context) ([]string, *response.BusinessError) {
	categories, err := s.repo.ActiveCategories(ctx)
	if err != nil {
		return nil, response.NewInternalError("failed to list categories", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (s *questionService) List(ctx context.Context) ([]QuestionDTO, *response.BusinessError) {
	qs, err := s.repo.List(ctx)
	if err != nil {
		return nil, response.NewInternalError("failed to list questions", err)
	}
	return toDTOs(qs), nil
}

func (s *questionService) Create(ctx context.Context, req *QuestionRequest) (*QuestionDTO, *response.BusinessError) {
	opts, bizErr := buildOptions(req.Options)
	if bizErr != nil {
		return nil, bizErr
	}

	q := &questionModel.Question{Options: opts}
	applyRequest(q, req)

	if err := s.repo.Create(ctx, q); err != nil {
		return nil, response.NewInternalError("failed to create question", err)
	}

	dto := ToDTO(q)
	return &dto, nil
}

// Update 整体替换：更新题目字段、删除全部旧选项、插入新选项，在同一事务内完成
func (s *questionService) Update(ctx context.Context, id uint, req *QuestionRequest) (*QuestionDTO, *response.BusinessError) {
	opts, bizErr := buildOptions(req.Options)
	if bizErr != nil {
		return nil, bizErr
	}

	var updated *questionModel.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		q, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		applyRequest(q, req)
		if err := repo.UpdateFields(ctx, q); err != nil {
			return err
		}
		if err := repo.DeleteOptions(ctx, id); err != nil {
			return err
		}
		for i := range opts {
			opts[i].QuestionID = id
		}
		if err := repo.CreateOptions(ctx, opts); err != nil {
			return err
		}

		q.Options = opts
		updated = q
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Question not found")
		}
		return nil, response.NewInternalError("failed to update question", err)
	}

	dto := ToDTO(updated)
	return &dto, nil
}

func (s *questionService) Delete(ctx context.Context, id uint) *response.BusinessError {
	var deleted bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.DeleteOptions(ctx, id); err != nil {
			return err
		}
		var err error
		deleted, err = repo.Delete(ctx, id)
		return err
	})
	if err != nil {
		return response.NewInternalError("failed to delete question", err)
	}
	if !deleted {
		return response.NewNotFoundError("Question not found")
	}
	return nil
}

func (s *questionService) Toggle(ctx context.Context, id uint) (*QuestionDTO, *response.BusinessError) {
	q, bizErr := s.load(ctx, id)
	if bizErr != nil {
		return nil, bizErr
	}

	q.IsActive = !q.IsActive
	if err := s.repo.SetActive(ctx, id, q.IsActive); err != nil {
		return nil, response.NewInternalError("failed to toggle question", err)
	}

	dto := ToDTO(q)
	return &dto, nil
}

func (s *questionService) Options(ctx context.Context, id uint) ([]OptionDTO, *response.BusinessError) {
	if _, bizErr := s.load(ctx, id); bizErr != nil {
		return nil, bizErr
	}
	opts, err := s.repo.Options(ctx, id)
	if err != nil {
		return nil, response.NewInternalError("failed to list options", err)
	}
	return toOptionDTOs(opts), nil
}

func (s *questionService) load(ctx context.Context, id uint) (*questionModel.Question, *response.BusinessError) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Question not found")
		}
		return nil, response.NewInternalError("failed to load question", err)
	}
	return q, nil
}

// applyRequest 写入题目字段并补全默认值
func applyRequest(q *questionModel.Question, req *QuestionRequest) {
	q.QuestionText = req.QuestionText
	q.Category = strings.TrimSpace(req.Category)

	q.Weight = 1
	if req.Weight != nil {
		q.Weight = *req.Weight
	}
	q.Order = 1
	if req.Order != nil {
		q.Order = *req.Order
	}
	q.IsActive = true
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}
	q.TestKey = questionModel.DefaultTestKey
	if key := strings.TrimSpace(req.TestKey); key != "" {
		q.TestKey = key
	}
}

// buildOptions 未传 order 的选项按位置编号（从 1 开始），同一题内 order 不能重复
func buildOptions(reqs []OptionRequest) ([]questionModel.Option, *response.BusinessError) {
	opts := make([]questionModel.Option, 0, len(reqs))
	seen := make(map[int]bool, len(reqs))

	for i, r := range reqs {
		order := i + 1
		if r.Order != nil {
			order = *r.Order
		}
		if seen[order] {
			return nil, response.NewValidationError("duplicate option order: " + strconv.Itoa(order))
		}
		seen[order] = true

		opts = append(opts, questionModel.Option{
			OptionText:  r.OptionText,
			OptionValue: r.OptionValue,
			Order:       order,
		})
	}
	return opts, nil
}
