package assessment

import (
	"context"
	"errors"
	"testing"
	"time"

	"mindmeter/internal/model/testresult"
	"mindmeter/internal/scoring"
	"mindmeter/internal/testutils"
	"mindmeter/packages/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAssessmentService(t *testing.T) (*assessmentService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	svc := NewAssessmentService(db, NewSubmissionRepository(db)).(*assessmentService)
	return svc, db
}

func answersOf(values ...int) []scoring.Answer {
	out := make([]scoring.Answer, len(values))
	for i, v := range values {
		out[i] = scoring.Answer{QuestionID: uint(i + 1), AnswerValue: v}
	}
	return out
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestAssessmentService_Submit(t *testing.T) {
	tests := []struct {
		name        string
		values      []int
		wantTotal   int
		wantLevel   testresult.SeverityLevel
		wantContact bool
	}{
		{name: "minimal", values: []int{0, 1, 0, 2}, wantTotal: 3, wantLevel: testresult.SeverityMinimal},
		{name: "moderate", values: []int{3, 3, 3, 3}, wantTotal: 12, wantLevel: testresult.SeverityModerate},
		{name: "severe", values: []int{3, 3, 3, 3, 3, 3, 3}, wantTotal: 21, wantLevel: testresult.SeveritySevere, wantContact: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, db := setupAssessmentService(t)
			u := testutils.CreateTestUser(db)

			res, err := service.Submit(context.Background(), u.ID, &SubmitRequest{Answers: answersOf(tt.values...)})
			require.Nil(t, err)

			assert.Equal(t, tt.wantTotal, res.TotalScore)
			assert.Equal(t, tt.wantLevel, res.SeverityLevel)
			assert.Equal(t, tt.wantContact, res.ShouldContactExpert)
			assert.NotZero(t, res.TestResultID)

			var stored testresult.TestResult
			require.NoError(t, db.Preload("Answers").First(&stored, res.TestResultID).Error)
			assert.Equal(t, u.ID, stored.UserID)
			assert.Equal(t, "DASS-21", stored.TestType)
			assert.Equal(t, res.Diagnosis, stored.Diagnosis)
			require.Len(t, stored.Answers, len(tt.values))

			sum := 0
			for _, a := range stored.Answers {
				sum += a.AnswerValue
			}
			assert.Equal(t, stored.TotalScore, sum)
		})
	}
}

func TestAssessmentService_SubmitEmptyAnswers(t *testing.T) {
	service, db := setupAssessmentService(t)
	u := testutils.CreateTestUser(db)

	_, err := service.Submit(context.Background(), u.ID, &SubmitRequest{})
	require.NotNil(t, err)
	assert.Equal(t, response.InvalidParameter, err.Code)
	assert.Zero(t, countRows(t, db, &testresult.TestResult{}))
}

// failingRepository 在第 failAt 次写入作答时返回错误
type failingRepository struct {
	SubmissionRepository
	failAt int
	calls  *int
}

func (r *failingRepository) WithTx(tx *gorm.DB) SubmissionRepository {
	return &failingRepository{SubmissionRepository: r.SubmissionRepository.WithTx(tx), failAt: r.failAt, calls: r.calls}
}

func (r *failingRepository) CreateAnswer(ctx context.Context, a *testresult.Answer) error {
	*r.calls++
	if *r.calls == r.failAt {
		return errors.New("disk full")
	}
	return r.SubmissionRepository.CreateAnswer(ctx, a)
}

func TestAssessmentService_SubmitRollsBack(t *testing.T) {
	db := testutils.SetupTestDB(t)
	u := testutils.CreateTestUser(db)

	calls := 0
	repo := &failingRepository{SubmissionRepository: NewSubmissionRepository(db), failAt: 3, calls: &calls}
	service := NewAssessmentService(db, repo)

	_, err := service.Submit(context.Background(), u.ID, &SubmitRequest{Answers: answersOf(1, 2, 3, 0, 1)})
	require.NotNil(t, err)
	assert.Equal(t, response.Fail, err.Code)
	assert.Equal(t, 3, calls)

	assert.Zero(t, countRows(t, db, &testresult.TestResult{}))
	assert.Zero(t, countRows(t, db, &testresult.Answer{}))
}

func TestAssessmentService_HistoryAndListing(t *testing.T) {
	service, db := setupAssessmentService(t)
	ctx := context.Background()

	alice := testutils.CreateTestUser(db, testutils.WithName("Alice", "Pham"))
	bob := testutils.CreateTestUser(db)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	older := testutils.CreateTestResult(db, alice.ID, testresult.SeverityMild, base)
	newer := testutils.CreateTestResult(db, alice.ID, testresult.SeveritySevere, base.Add(24*time.Hour))
	testutils.CreateTestResult(db, bob.ID, testresult.SeveritySevere, base.Add(time.Hour))

	history, err := service.History(ctx, alice.ID)
	require.Nil(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.ID, history[0].ID)
	assert.Equal(t, older.ID, history[1].ID)
	assert.Equal(t, "Alice Pham", history[0].StudentName)
	assert.Equal(t, alice.EmailValue(), history[0].Email)

	all, err := service.ListAll(ctx)
	require.Nil(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, newer.ID, all[0].ID)

	t.Run("by severity", func(t *testing.T) {
		severe, err := service.ListBySeverity(ctx, "severe")
		require.Nil(t, err)
		assert.Len(t, severe, 2)

		_, err = service.ListBySeverity(ctx, "catastrophic")
		require.NotNil(t, err)
		assert.Equal(t, response.InvalidParameter, err.Code)
	})

	t.Run("by student", func(t *testing.T) {
		results, err := service.ListByStudent(ctx, bob.ID)
		require.Nil(t, err)
		assert.Len(t, results, 1)

		results, err = service.ListByStudent(ctx, 99999)
		require.Nil(t, err)
		assert.Empty(t, results)
	})
}

func TestAssessmentService_Recent(t *testing.T) {
	service, db := setupAssessmentService(t)
	ctx := context.Background()

	u := testutils.CreateTestUser(db)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		testutils.CreateTestResult(db, u.ID, testresult.SeverityMinimal, base.Add(time.Duration(i)*time.Hour))
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "explicit", limit: 3, want: 3},
		{name: "default", limit: 0, want: RecentLimit},
		{name: "capped", limit: 50, want: RecentLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.Recent(ctx, tt.limit)
			require.Nil(t, err)
			assert.Len(t, results, tt.want)
		})
	}
}

func TestAssessmentService_AnswersAndDelete(t *testing.T) {
	service, db := setupAssessmentService(t)
	ctx := context.Background()

	u := testutils.CreateTestUser(db)
	q := testutils.CreateTestQuestion(db, "DASS-21", 0, 1, 2, 3)

	res, bizErr := service.Submit(ctx, u.ID, &SubmitRequest{Answers: []scoring.Answer{
		{QuestionID: q.ID, AnswerValue: 2},
		{QuestionID: 424242, AnswerValue: 1},
	}})
	require.Nil(t, bizErr)

	answers, bizErr := service.Answers(ctx, res.TestResultID)
	require.Nil(t, bizErr)
	require.Len(t, answers, 2)
	assert.Equal(t, q.QuestionText, answers[0].QuestionText)
	assert.Equal(t, 2, answers[0].AnswerValue)
	assert.Empty(t, answers[1].QuestionText)

	require.Nil(t, service.Delete(ctx, res.TestResultID))
	assert.Zero(t, countRows(t, db, &testresult.Answer{}))

	_, bizErr = service.Answers(ctx, res.TestResultID)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)

	bizErr = service.Delete(ctx, res.TestResultID)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}

func TestAssessmentService_TestedAtFromClock(t *testing.T) {
	service, db := setupAssessmentService(t)
	fixed := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	u := testutils.CreateTestUser(db)
	res, err := service.Submit(context.Background(), u.ID, &SubmitRequest{TestType: "BDI", Answers: answersOf(1)})
	require.Nil(t, err)
	assert.True(t, fixed.Equal(res.TestedAt))

	var stored testresult.TestResult
	require.NoError(t, db.First(&stored, res.TestResultID).Error)
	assert.Equal(t, "BDI", stored.TestType)
}
