package testresult

import (
	"time"

	"mindmeter/internal/model/enum"
	"mindmeter/packages/response"
)

type SeverityLevel string

const (
	SeverityMinimal  SeverityLevel = "MINIMAL"
	SeverityMild     SeverityLevel = "MILD"
	SeverityModerate SeverityLevel = "MODERATE"
	SeveritySevere   SeverityLevel = "SEVERE"
)

func ParseSeverityLevel(s string) (SeverityLevel, *response.BusinessError) {
	return enum.Parse("severity level", s, SeverityMinimal, SeverityMild, SeverityModerate, SeveritySevere)
}

// TestResult 一次测评结果。分数相关字段在创建时确定，之后不再重算
type TestResult struct {
	ID             uint          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID         uint          `gorm:"column:user_id;not null;index" json:"userId"`
	TotalScore     int           `gorm:"column:total_score;not null" json:"totalScore"`
	Diagnosis      string        `gorm:"column:diagnosis;type:varchar(255);not null" json:"diagnosis"`
	SeverityLevel  SeverityLevel `gorm:"column:severity_level;type:varchar(20);not null;index" json:"severityLevel"`
	Recommendation string        `gorm:"column:recommendation;type:text" json:"recommendation"`
	TestType       string        `gorm:"column:test_type;type:varchar(50)" json:"testType"`
	TestedAt       time.Time     `gorm:"column:tested_at;not null;index" json:"testedAt"`
	Answers        []Answer      `gorm:"foreignKey:TestResultID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TestResult) TableName() string {
	return "depression_test_results"
}

// Answer 单题作答。question_id 不做外键校验
type Answer struct {
	ID           uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TestResultID uint `gorm:"column:test_result_id;not null;index" json:"testResultId"`
	QuestionID   uint `gorm:"column:question_id;not null" json:"questionId"`
	AnswerValue  int  `gorm:"column:answer_value;not null" json:"answerValue"`
}

func (Answer) TableName() string {
	return "depression_test_answers"
}
