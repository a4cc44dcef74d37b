package user

import (
	"time"

	userModel "mindmeter/internal/model/user"
)

// UserDTO 对外返回的用户信息，不含密码
type UserDTO struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	AvatarURL string    `json:"avatarUrl"`
	Anonymous bool      `json:"anonymous"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToDTO(u *userModel.User) UserDTO {
	dto := UserDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.EmailValue(),
		Phone:     u.PhoneValue(),
		Role:      string(u.Role),
		Status:    string(u.Status),
		Anonymous: u.Anonymous,
		Plan:      u.Plan,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.AvatarURL != nil {
		dto.AvatarURL = *u.AvatarURL
	}
	return dto
}

func toDTOs(users []userModel.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, ToDTO(&users[i]))
	}
	return out
}

// PagedUsers 分页结果，currentPage 从 0 开始
type PagedUsers struct {
	Users       []UserDTO `json:"users"`
	CurrentPage int       `json:"currentPage"`
	TotalItems  int64     `json:"totalItems"`
	TotalPages  int       `json:"totalPages"`
}

// CreateUserRequest 管理员直接创建账号
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

// UpdateUserRequest 管理员整体更新账号资料
type UpdateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// UpdateProfileRequest 仅更新传入的字段
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}
