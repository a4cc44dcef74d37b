package question

import (
	questionModel "mindmeter/internal/model/question"
)

type OptionDTO struct {
	ID          uint   `json:"id"`
	OptionText  string `json:"optionText"`
	OptionValue int    `json:"optionValue"`
	Order       int    `json:"order"`
}

type QuestionDTO struct {
	ID           uint        `json:"id"`
	QuestionText string      `json:"questionText"`
	Weight       int         `json:"weight"`
	Category     string      `json:"category"`
	Order        int         `json:"order"`
	TestKey      string      `json:"testKey"`
	IsActive     bool        `json:"isActive"`
	Options      []OptionDTO `json:"options"`
}

func toOptionDTOs(opts []questionModel.Option) []OptionDTO {
	out := make([]OptionDTO, 0, len(opts))
	for _, o := range opts {
		out = append(out, OptionDTO{
			ID:          o.ID,
			OptionText:  o.OptionText,
			OptionValue: o.OptionValue,
			Order:       o.Order,
		})
	}
	return out
}

func ToDTO(q *questionModel.Question) QuestionDTO {
	return QuestionDTO{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		Weight:       q.Weight,
		Category:     q.Category,
		Order:        q.Order,
		TestKey:      q.TestKey,
		IsActive:     q.IsActive,
		Options:      toOptionDTOs(q.Options),
	}
}

func toDTOs(qs []questionModel.Question) []QuestionDTO {
	out := make([]QuestionDTO, 0, len(qs))
	for i := range qs {
		out = append(out, ToDTO(&qs[i]))
	}
	return out
}

type OptionRequest struct {
	OptionText  string `json:"optionText" binding:"required"`
	OptionValue int    `json:"optionValue"`
	Order       *int   `json:"order"`
}

// QuestionRequest 创建和更新共用。未传的字段使用默认值
type QuestionRequest struct {
	QuestionText string          `json:"questionText" binding:"required"`
	Weight       *int            `json:"weight"`
	Category     string          `json:"category"`
	Order        *int            `json:"order"`
	IsActive     *bool           `json:"isActive"`
	TestKey      string          `json:"testKey"`
	Options      []OptionRequest `json:"options" binding:"dive"`
}
