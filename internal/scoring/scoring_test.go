package scoring

import (
	"fmt"
	"math/rand"
	"testing"

	"mindmeter/internal/model/testresult"

	"github.com/stretchr/testify/assert"
)

func answersOf(values ...int) []Answer {
	out := make([]Answer, len(values))
	for i, v := range values {
		out[i] = Answer{QuestionID: uint(i + 1), AnswerValue: v}
	}
	return out
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		total     int
		severity  testresult.SeverityLevel
		diagnosis string
		contact   bool
	}{
		{0, testresult.SeverityMinimal, "Không có dấu hiệu trầm cảm", false},
		{4, testresult.SeverityMinimal, "Không có dấu hiệu trầm cảm", false},
		{5, testresult.SeverityMild, "Trầm cảm nhẹ", false},
		{9, testresult.SeverityMild, "Trầm cảm nhẹ", false},
		{10, testresult.SeverityModerate, "Trầm cảm vừa", false},
		{14, testresult.SeverityModerate, "Trầm cảm vừa", false},
		{15, testresult.SeveritySevere, "Trầm cảm nặng vừa", true},
		{19, testresult.SeveritySevere, "Trầm cảm nặng vừa", true},
		{20, testresult.SeveritySevere, "Trầm cảm rất nặng", true},
		{63, testresult.SeveritySevere, "Trầm cảm rất nặng", true},
		{-3, testresult.SeverityMinimal, "Không có dấu hiệu trầm cảm", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("total=%d", tt.total), func(t *testing.T) {
			got := Classify(tt.total)
			assert.Equal(t, tt.total, got.TotalScore)
			assert.Equal(t, tt.severity, got.SeverityLevel)
			assert.Equal(t, tt.diagnosis, got.Diagnosis)
			assert.Equal(t, tt.contact, got.ShouldContactExpert)
			assert.Equal(t, recommendations[tt.severity], got.Recommendation)
		})
	}
}

func TestScore_SumsValues(t *testing.T) {
	assert.Equal(t, 0, Score(nil).TotalScore)
	assert.Equal(t, 4, Score(answersOf(1, 2, 1)).TotalScore)
	assert.Equal(t, 21, Score(answersOf(3, 3, 3, 3, 3, 3, 3)).TotalScore)
	// 超出 0-3 的值原样累加
	assert.Equal(t, 107, Score(answersOf(100, 7)).TotalScore)
}

func TestScore_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		values := make([]int, rng.Intn(21))
		sum := 0
		for j := range values {
			values[j] = rng.Intn(4)
			sum += values[j]
		}
		answers := answersOf(values...)
		shuffled := append([]Answer(nil), answers...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Score(answers)
		assert.Equal(t, sum, got.TotalScore)
		assert.Equal(t, got, Score(shuffled))
		assert.Equal(t, got.SeverityLevel == testresult.SeveritySevere, got.ShouldContactExpert)
	}
}

func TestScore_Scenarios(t *testing.T) {
	minimal := Score(answersOf(1, 2, 1))
	assert.Equal(t, testresult.SeverityMinimal, minimal.SeverityLevel)
	assert.False(t, minimal.ShouldContactExpert)

	severe := Score(answersOf(3, 3, 3, 3, 3, 3, 3))
	assert.Equal(t, testresult.SeveritySevere, severe.SeverityLevel)
	assert.True(t, severe.ShouldContactExpert)
}
