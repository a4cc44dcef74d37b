// Package scoring 根据作答计算总分、诊断、严重程度和建议。纯函数，无副作用
package scoring

import "mindmeter/internal/model/testresult"

// Answer 单题作答
type Answer struct {
	QuestionID  uint `json:"questionId"`
	AnswerValue int  `json:"answerValue"`
}

type Result struct {
	TotalScore          int
	Diagnosis           string
	SeverityLevel       testresult.SeverityLevel
	Recommendation      string
	ShouldContactExpert bool
}

type tier struct {
	max       int
	severity  testresult.SeverityLevel
	diagnosis string
}

// 上界包含在内。15-19 与 20+ 的严重程度相同，诊断文案不同
var tiers = []tier{
	{4, testresult.SeverityMinimal, "Không có dấu hiệu trầm cảm"},
	{9, testresult.SeverityMild, "Trầm cảm nhẹ"},
	{14, testresult.SeverityModerate, "Trầm cảm vừa"},
	{19, testresult.SeveritySevere, "Trầm cảm nặng vừa"},
}

const extremeDiagnosis = "Trầm cảm rất nặng"

var recommendations = map[testresult.SeverityLevel]string{
	testresult.SeverityMinimal:  "Tình trạng tâm lý của bạn ổn định. Hãy duy trì lối sống lành mạnh.",
	testresult.SeverityMild:     "Bạn có một số dấu hiệu nhẹ. Hãy thử các hoạt động thư giãn và chia sẻ với người thân.",
	testresult.SeverityModerate: "Bạn có dấu hiệu trầm cảm vừa. Nên tham khảo ý kiến chuyên gia tâm lý.",
	testresult.SeveritySevere:   "Bạn có dấu hiệu trầm cảm nặng. Hãy liên hệ chuyên gia tâm lý ngay lập tức.",
}

// Score 总分为各题分值之和，不截断也不校验范围
func Score(answers []Answer) Result {
	total := 0
	for _, a := range answers {
		total += a.AnswerValue
	}
	return Classify(total)
}

// Classify 按总分分级
func Classify(total int) Result {
	severity, diagnosis := testresult.SeveritySevere, extremeDiagnosis
	for _, t := range tiers {
		if total <= t.max {
			severity, diagnosis = t.severity, t.diagnosis
			break
		}
	}

	return Result{
		TotalScore:          total,
		Diagnosis:           diagnosis,
		SeverityLevel:       severity,
		Recommendation:      recommendations[severity],
		ShouldContactExpert: severity == testresult.SeveritySevere,
	}
}
