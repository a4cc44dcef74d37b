package expertnote

import (
	"context"
	"errors"
	"strings"

	"mindmeter/internal/identity"
	noteModel "mindmeter/internal/model/expertnote"
	"mindmeter/packages/response"

	"gorm.io/gorm"
)

// NoteService 专家对学生的备注
type NoteService interface {
	Create(ctx context.Context, expertID uint, req *CreateNoteRequest) (*noteModel.Note, *response.BusinessError)
	ByExpert(ctx context.Context, expertID uint) ([]noteModel.Note, *response.BusinessError)
	ByStudent(ctx context.Context, studentID uint) ([]noteModel.Note, *response.BusinessError)
}

type noteService struct {
	repo  NoteRepository
	users identity.UserLookup
}

func NewNoteService(repo NoteRepository, users identity.UserLookup) NoteService {
	return &noteService{repo: repo, users: users}
}

func (s *noteService) Create(ctx context.Context, expertID uint, req *CreateNoteRequest) (*noteModel.Note, *response.BusinessError) {
	kind, bizErr := noteModel.ParseNoteType(req.NoteType)
	if bizErr != nil {
		return nil, bizErr
	}

	if _, err := s.users.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Student not found")
		}
		return nil, response.NewInternalError("failed to load student", err)
	}

	n := &noteModel.Note{
		ExpertID:     expertID,
		StudentID:    req.StudentID,
		TestResultID: req.TestResultID,
		Note:         strings.TrimSpace(req.Note),
		NoteType:     kind,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, response.NewInternalError("failed to create note", err)
	}
	return n, nil
}

func (s *noteService) ByExpert(ctx context.Context, expertID uint) ([]noteModel.Note, *response.BusinessError) {
	return result(s.repo.ListByExpert(ctx, expertID))
}

func (s *noteService) ByStudent(ctx context.Context, studentID uint) ([]noteModel.Note, *response.BusinessError) {
	return result(s.repo.ListByStudent(ctx, studentID))
}

func result(notes []noteModel.Note, err error) ([]noteModel.Note, *response.BusinessError) {
	if err != nil {
		return nil, response.NewInternalError("failed to list notes", err)
	}
	if notes == nil {
		notes = []noteModel.Note{}
	}
	return notes, nil
}
