package identity

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	userModel "mindmeter/internal/model/user"
	"mindmeter/packages/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLookup struct {
	byID    map[uint]*userModel.User
	byEmail map[string]*userModel.User
	err     error
}

func (f *fakeLookup) GetByID(_ context.Context, id uint) (*userModel.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLookup) GetByEmail(_ context.Context, email string) (*userModel.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newLookup() *fakeLookup {
	email := "an@example.com"
	registered := &userModel.User{ID: 42, Email: &email, Role: userModel.RoleStudent, Status: userModel.StatusActive, FirstName: "An"}
	anon := &userModel.User{ID: 7, Anonymous: true, Role: userModel.RoleStudent, Status: userModel.StatusActive, FirstName: "Người dùng", LastName: "Ẩn danh"}
	return &fakeLookup{
		byID:    map[uint]*userModel.User{42: registered, 7: anon},
		byEmail: map[string]*userModel.User{email: registered},
	}
}

func TestParsePrincipal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Principal
	}{
		{"匿名主体", "anonymous_42", AnonymousPrincipal(42)},
		{"前导零", "anonymous_007", AnonymousPrincipal(7)},
		{"邮箱规范化", "  An@Example.COM ", EmailPrincipal("an@example.com")},
		{"前缀后无数字", "anonymous_", EmailPrincipal("anonymous_")},
		{"数字后带字母", "anonymous_12a", EmailPrincipal("anonymous_12a")},
		{"负数", "anonymous_-1", EmailPrincipal("anonymous_-1")},
		{"溢出按邮箱处理", "anonymous_99999999999999999999999", EmailPrincipal("anonymous_99999999999999999999999")},
		{"大写前缀不是匿名", "ANONYMOUS_1", EmailPrincipal("anonymous_1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePrincipal(tt.in))
		})
	}
}

func TestSubjectOf(t *testing.T) {
	email := "an@example.com"
	assert.Equal(t, "anonymous_7", SubjectOf(&userModel.User{ID: 7, Anonymous: true}))
	assert.Equal(t, email, SubjectOf(&userModel.User{ID: 42, Email: &email}))
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(newLookup())
	ctx := context.Background()

	tests := []struct {
		name     string
		in       string
		wantID   uint
		wantCode response.ResponseCode
		wantErr  bool
	}{
		{"匿名用户", "anonymous_7", 7, 0, false},
		{"邮箱大小写不敏感", "AN@example.com", 42, 0, false},
		{"非匿名用户不能用匿名主体", "anonymous_42", 0, response.NotFound, true},
		{"匿名用户不存在", "anonymous_999", 0, response.NotFound, true},
		{"邮箱不存在", "ghost@example.com", 0, response.NotFound, true},
		{"溢出走邮箱分支", "anonymous_99999999999999999999999", 0, response.NotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := r.Resolve(ctx, tt.in)
			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, tt.wantCode, err.Code)
				assert.Nil(t, u)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, tt.wantID, u.ID)
		})
	}
}

func TestResolver_StorageError(t *testing.T) {
	r := NewResolver(&fakeLookup{err: errors.New("db down")})
	_, err := r.Resolve(context.Background(), "an@example.com")
	require.NotNil(t, err)
	assert.Equal(t, response.Fail, err.Code)
}

func TestCurrentUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)

	SetCurrentUser(c, &AuthenticatedUser{ID: 3, Role: userModel.RoleExpert})
	u, ok := CurrentUser(c)
	require.True(t, ok)
	assert.Equal(t, uint(3), u.ID)
	assert.True(t, u.HasRole(userModel.RoleAdmin, userModel.RoleExpert))
	assert.False(t, u.HasRole(userModel.RoleAdmin))
}
