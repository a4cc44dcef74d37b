package identity

import (
	"context"
	"errors"

	userModel "mindmeter/internal/model/user"
	"mindmeter/packages/response"

	"gorm.io/gorm"
)

// AuthenticatedUser 每个请求解析一次，之后所有处理器共用
type AuthenticatedUser struct {
	ID        uint             `json:"id"`
	Email     string           `json:"email"`
	Role      userModel.Role   `json:"role"`
	Anonymous bool             `json:"anonymous"`
	Status    userModel.Status `json:"status"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
}

// HasRole 是否为给定角色之一
func (u *AuthenticatedUser) HasRole(roles ...userModel.Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// UserLookup 用户查询，未找到时返回 gorm.ErrRecordNotFound
type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*userModel.User, error)
	GetByEmail(ctx context.Context, email string) (*userModel.User, error)
}

type Resolver struct {
	users UserLookup
}

func NewResolver(users UserLookup) *Resolver {
	return &Resolver{users: users}
}

// Resolve 将主体名解析为用户
func (r *Resolver) Resolve(ctx context.Context, name string) (*AuthenticatedUser, *response.BusinessError) {
	var (
		u   *userModel.User
		err error
	)

	switch p := ParsePrincipal(name).(type) {
	case AnonymousPrincipal:
		u, err = r.users.GetByID(ctx, uint(p))
		if err == nil && !u.Anonymous {
			return nil, response.NewNotFoundError("User not found")
		}
	case EmailPrincipal:
		u, err = r.users.GetByEmail(ctx, string(p))
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found")
		}
		return nil, response.NewInternalError("failed to load user", err)
	}

	return FromUser(u), nil
}

// FromUser 由用户模型构造
func FromUser(u *userModel.User) *AuthenticatedUser {
	return &AuthenticatedUser{
		ID:        u.ID,
		Email:     u.EmailValue(),
		Role:      u.Role,
		Anonymous: u.Anonymous,
		Status:    u.Status,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
