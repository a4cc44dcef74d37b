package expertnote

import (
	"time"

	"mindmeter/internal/model/enum"
	"mindmeter/packages/response"
)

type NoteType string

const (
	TypeAdvice         NoteType = "ADVICE"
	TypeRecommendation NoteType = "RECOMMENDATION"
	TypeWarning        NoteType = "WARNING"
	TypeGeneral        NoteType = "GENERAL"
)

// ParseNoteType 空串视为 GENERAL
func ParseNoteType(s string) (NoteType, *response.BusinessError) {
	if s == "" {
		return TypeGeneral, nil
	}
	return enum.Parse("note type", s, TypeAdvice, TypeRecommendation, TypeWarning, TypeGeneral)
}

type Note struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ExpertID     uint      `gorm:"column:expert_id;not null;index" json:"expertId"`
	StudentID    uint      `gorm:"column:student_id;not null;index" json:"studentId"`
	TestResultID *uint     `gorm:"column:test_result_id" json:"testResultId"`
	Note         string    `gorm:"column:note;type:text;not null" json:"note"`
	NoteType     NoteType  `gorm:"column:note_type;type:varchar(20);not null;default:'GENERAL'" json:"noteType"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Note) TableName() string {
	return "expert_notes"
}
