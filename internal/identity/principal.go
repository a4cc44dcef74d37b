package identity

import (
	"strconv"
	"strings"

	userModel "mindmeter/internal/model/user"
)

const anonymousPrefix = "anonymous_"

// Principal 令牌主体：邮箱或匿名用户 ID 二选一
type Principal interface {
	principal()
	String() string
}

// EmailPrincipal 已规范化（去空白、小写）的邮箱
type EmailPrincipal string

func (EmailPrincipal) principal()       {}
func (p EmailPrincipal) String() string { return string(p) }

// AnonymousPrincipal 匿名用户 ID
type AnonymousPrincipal uint64

func (AnonymousPrincipal) principal() {}
func (p AnonymousPrincipal) String() string {
	return anonymousPrefix + strconv.FormatUint(uint64(p), 10)
}

// ParsePrincipal 只有 "anonymous_" 后接纯数字才是匿名主体；
// 数字溢出 uint64 时按邮箱处理
func ParsePrincipal(name string) Principal {
	if digits, ok := strings.CutPrefix(name, anonymousPrefix); ok && isDigits(digits) {
		if id, err := strconv.ParseUint(digits, 10, 64); err == nil {
			return AnonymousPrincipal(id)
		}
	}
	return EmailPrincipal(userModel.NormalizeEmail(name))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// SubjectOf 用户对应的令牌主体
func SubjectOf(u *userModel.User) string {
	if u.Anonymous {
		return AnonymousPrincipal(u.ID).String()
	}
	return u.EmailValue()
}
