package testutils

import (
	"fmt"
	"time"

	"mindmeter/internal/model/advice"
	"mindmeter/internal/model/question"
	"mindmeter/internal/model/testresult"
	"mindmeter/internal/model/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateTestUser creates a test user with a unique email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	email := fmt.Sprintf("test_%s@example.com", uuid.NewString())
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	hash := string(passwordHash)

	testUser := &user.User{
		Email:        &email,
		PasswordHash: &hash,
		FirstName:    "Test",
		LastName:     "User",
		Role:         user.RoleStudent,
		Status:       user.StatusActive,
		Plan:         user.PlanFree,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = &email
	}
}

// WithRole sets the role
func WithRole(role user.Role) UserOption {
	return func(u *user.User) {
		u.Role = role
	}
}

// WithStatus sets the account status
func WithStatus(status user.Status) UserOption {
	return func(u *user.User) {
		u.Status = status
	}
}

// WithName sets first and last name
func WithName(first, last string) UserOption {
	return func(u *user.User) {
		u.FirstName = first
		u.LastName = last
	}
}

// WithPassword sets the password (will be hashed)
func WithPassword(password string) UserOption {
	return func(u *user.User) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		s := string(hash)
		u.PasswordHash = &s
	}
}

// Anonymous makes the user an anonymous account without email or password
func Anonymous() UserOption {
	return func(u *user.User) {
		u.Email = nil
		u.PasswordHash = nil
		u.Anonymous = true
		u.FirstName = "Người dùng"
		u.LastName = "Ẩn danh"
	}
}

// CreateTestQuestion creates an active question with the given option values
func CreateTestQuestion(db *gorm.DB, testKey string, optionValues ...int) *question.Question {
	q := &question.Question{
		QuestionText: "Question " + uuid.NewString()[:8],
		Weight:       1,
		Category:     "mood",
		Order:        1,
		TestKey:      testKey,
		IsActive:     true,
	}
	for i, v := range optionValues {
		q.Options = append(q.Options, question.Option{
			OptionText:  fmt.Sprintf("Option %d", i+1),
			OptionValue: v,
			Order:       i + 1,
		})
	}

	if err := db.Create(q).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test question: %v", err))
	}
	return q
}

// CreateTestResult creates a test result for a user at the given time
func CreateTestResult(db *gorm.DB, userID uint, severity testresult.SeverityLevel, testedAt time.Time) *testresult.TestResult {
	r := &testresult.TestResult{
		UserID:         userID,
		TotalScore:     1,
		Diagnosis:      "diagnosis",
		SeverityLevel:  severity,
		Recommendation: "recommendation",
		TestType:       "DASS-21",
		TestedAt:       testedAt,
	}
	if err := db.Create(r).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test result: %v", err))
	}
	return r
}

// CreateTestAdvice creates an unread advice message
func CreateTestAdvice(db *gorm.DB, senderID, receiverID uint, sentAt time.Time) *advice.Message {
	m := &advice.Message{
		SenderID:    senderID,
		ReceiverID:  receiverID,
		Message:     "Take a walk every day",
		MessageType: advice.TypeAdvice,
		SentAt:      sentAt,
	}
	if err := db.Create(m).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test advice: %v", err))
	}
	return m
}
