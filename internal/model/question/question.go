package question

import "time"

const DefaultTestKey = "DASS-21"

// Question 测评题目，选项按 order 升序返回
type Question struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionText string    `gorm:"column:question_text;type:text;not null" json:"questionText"`
	Weight       int       `gorm:"column:weight;not null;default:1" json:"weight"`
	Category     string    `gorm:"column:category;type:varchar(50)" json:"category"`
	Order        int       `gorm:"column:order;not null;default:1" json:"order"`
	TestKey      string    `gorm:"column:test_key;type:varchar(50);not null;default:'DASS-21';index" json:"testKey"`
	IsActive     bool      `gorm:"column:is_active;not null" json:"isActive"`
	Options      []Option  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Question) TableName() string {
	return "depression_questions"
}

// Option 题目选项
type Option struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionID  uint   `gorm:"column:question_id;not null;index" json:"questionId"`
	OptionText  string `gorm:"column:option_text;type:text;not null" json:"optionText"`
	OptionValue int    `gorm:"column:option_value;not null" json:"optionValue"`
	Order       int    `gorm:"column:order;not null" json:"order"`
}

func (Option) TableName() string {
	return "depression_question_options"
}
