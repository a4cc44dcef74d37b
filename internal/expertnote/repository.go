package expertnote

import (
	"context"

	noteModel "mindmeter/internal/model/expertnote"

	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(ctx context.Context, n *noteModel.Note) error
	ListByExpert(ctx context.Context, expertID uint) ([]noteModel.Note, error)
	ListByStudent(ctx context.Context, studentID uint) ([]noteModel.Note, error)
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, n *noteModel.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *noteRepository) ListByExpert(ctx context.Context, expertID uint) ([]noteModel.Note, error) {
	return r.list(ctx, "expert_id = ?", expertID)
}

func (r *noteRepository) ListByStudent(ctx context.Context, studentID uint) ([]noteModel.Note, error) {
	return r.list(ctx, "student_id = ?", studentID)
}

func (r *noteRepository) list(ctx context.Context, cond string, id uint) ([]noteModel.Note, error) {
	var notes []noteModel.Note
	err := r.db.WithContext(ctx).Where(cond, id).Order("created_at DESC").Order("id DESC").Find(&notes).Error
	return notes, err
}
