package assessment

import (
	"strings"
	"time"

	"mindmeter/internal/model/testresult"
	"mindmeter/internal/scoring"
)

type SubmitRequest struct {
	TestType string           `json:"testType"`
	Answers  []scoring.Answer `json:"answers" binding:"dive"`
}

type SubmitResponse struct {
	TestResultID        uint                     `json:"testResultId"`
	TotalScore          int                      `json:"totalScore"`
	Diagnosis           string                   `json:"diagnosis"`
	SeverityLevel       testresult.SeverityLevel `json:"severityLevel"`
	Recommendation      string                   `json:"recommendation"`
	TestedAt            time.Time                `json:"testedAt"`
	ShouldContactExpert bool                     `json:"shouldContactExpert"`
}

// ResultRow 测评结果连同作答用户信息
type ResultRow struct {
	ID             uint
	UserID         uint
	TotalScore     int
	Diagnosis      string
	SeverityLevel  testresult.SeverityLevel
	Recommendation string
	TestType       string
	TestedAt       time.Time
	FirstName      string
	LastName       string
	Email          *string
}

type ResultDTO struct {
	ID             uint                     `json:"id"`
	UserID         uint                     `json:"userId"`
	StudentName    string                   `json:"studentName"`
	Email          string                   `json:"email"`
	TotalScore     int                      `json:"totalScore"`
	Diagnosis      string                   `json:"diagnosis"`
	SeverityLevel  testresult.SeverityLevel `json:"severityLevel"`
	Recommendation string                   `json:"recommendation"`
	TestType       string                   `json:"testType"`
	TestedAt       time.Time                `json:"testedAt"`
}

func toResultDTOs(rows []ResultRow) []ResultDTO {
	out := make([]ResultDTO, 0, len(rows))
	for _, r := range rows {
		email := ""
		if r.Email != nil {
			email = *r.Email
		}
		out = append(out, ResultDTO{
			ID:             r.ID,
			UserID:         r.UserID,
			StudentName:    strings.TrimSpace(r.FirstName + " " + r.LastName),
			Email:          email,
			TotalScore:     r.TotalScore,
			Diagnosis:      r.Diagnosis,
			SeverityLevel:  r.SeverityLevel,
			Recommendation: r.Recommendation,
			TestType:       r.TestType,
			TestedAt:       r.TestedAt,
		})
	}
	return out
}

// AnswerDTO 作答明细。题目被删除后 questionText 为空
type AnswerDTO struct {
	QuestionID   uint   `json:"questionId"`
	QuestionText string `json:"questionText"`
	AnswerValue  int    `json:"answerValue"`
}
