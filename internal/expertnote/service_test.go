package expertnote

import (
	"context"
	"testing"
	"time"

	noteModel "mindmeter/internal/model/expertnote"
	"mindmeter/internal/model/testresult"
	userModel "mindmeter/internal/model/user"
	"mindmeter/internal/testutils"
	"mindmeter/internal/user"
	"mindmeter/packages/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewNoteService(NewNoteRepository(db), user.NewUserRepository(db))
	ctx := context.Background()

	expert := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExpert))
	student := testutils.CreateTestUser(db)
	result := testutils.CreateTestResult(db, student.ID, testresult.SeverityModerate, time.Now())

	t.Run("create with defaults", func(t *testing.T) {
		n, err := service.Create(ctx, expert.ID, &CreateNoteRequest{StudentID: student.ID, Note: " Theo dõi thêm "})
		require.Nil(t, err)
		assert.Equal(t, noteModel.TypeGeneral, n.NoteType)
		assert.Equal(t, "Theo dõi thêm", n.Note)
		assert.Nil(t, n.TestResultID)
	})

	t.Run("create linked to result", func(t *testing.T) {
		n, err := service.Create(ctx, expert.ID, &CreateNoteRequest{
			StudentID:    student.ID,
			TestResultID: &result.ID,
			Note:         "Cần gặp trực tiếp",
			NoteType:     "warning",
		})
		require.Nil(t, err)
		assert.Equal(t, noteModel.TypeWarning, n.NoteType)
		require.NotNil(t, n.TestResultID)
		assert.Equal(t, result.ID, *n.TestResultID)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := service.Create(ctx, expert.ID, &CreateNoteRequest{StudentID: 99999, Note: "x"})
		require.NotNil(t, err)
		assert.Equal(t, response.NotFound, err.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := service.Create(ctx, expert.ID, &CreateNoteRequest{StudentID: student.ID, Note: "x", NoteType: "GOSSIP"})
		require.NotNil(t, err)
		assert.Equal(t, response.InvalidParameter, err.Code)
	})

	byExpert, err := service.ByExpert(ctx, expert.ID)
	require.Nil(t, err)
	assert.Len(t, byExpert, 2)

	byStudent, err := service.ByStudent(ctx, student.ID)
	require.Nil(t, err)
	assert.Len(t, byStudent, 2)

	none, err := service.ByStudent(ctx, expert.ID)
	require.Nil(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
