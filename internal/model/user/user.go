package user

import (
	"strings"
	"time"

	"mindmeter/internal/model/enum"
	"mindmeter/packages/response"
)

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleExpert  Role = "EXPERT"
	RoleAdmin   Role = "ADMIN"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusBanned   Status = "BANNED"
)

const (
	PlanFree = "FREE"
	PlanPlus = "PLUS"
	PlanPro  = "PRO"
)

func ParseRole(s string) (Role, *response.BusinessError) {
	return enum.Parse("role", s, RoleStudent, RoleExpert, RoleAdmin)
}

func ParseStatus(s string) (Status, *response.BusinessError) {
	return enum.Parse("status", s, StatusActive, StatusInactive, StatusBanned)
}

// User 用户。匿名用户没有邮箱和密码
type User struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email        *string   `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash *string   `gorm:"column:password;type:varchar(255)" json:"-"`
	FirstName    string    `gorm:"column:first_name;type:varchar(100);not null" json:"firstName"`
	LastName     string    `gorm:"column:last_name;type:varchar(100);not null" json:"lastName"`
	Phone        *string   `gorm:"column:phone;type:varchar(30)" json:"phone"`
	AvatarURL    *string   `gorm:"column:avatar_url;type:varchar(500)" json:"avatarUrl"`
	Role         Role      `gorm:"column:role;type:varchar(20);not null;default:'STUDENT'" json:"role"`
	Status       Status    `gorm:"column:status;type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	Anonymous    bool      `gorm:"column:anonymous;not null;default:false" json:"anonymous"`
	Plan         string    `gorm:"column:plan;type:varchar(20);not null;default:'FREE'" json:"plan"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// EmailValue 邮箱，匿名用户返回空串
func (u *User) EmailValue() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}

func (u *User) PhoneValue() string {
	if u.Phone == nil {
		return ""
	}
	return *u.Phone
}

// FullName 名 + 姓，与前端展示一致
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Enabled 只有 ACTIVE 状态的账号可以通过认证
func (u *User) Enabled() bool {
	return u.Status == StatusActive
}

// NormalizeEmail 去空白并转小写
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
