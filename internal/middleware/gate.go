package middleware

import (
	"net/http"
	"strings"

	"mindmeter/internal/dto"
	"mindmeter/internal/identity"
	userModel "mindmeter/internal/model/user"
	"mindmeter/packages/response"

	"github.com/gin-gonic/gin"
)

// Access 访问级别
type Access int

const (
	// Authenticated 任意已登录用户
	Authenticated Access = iota
	Public
	// Roles 必须具备 Rule.Roles 之一
	Roles
)

// Rule 路径前缀规则，Method 为空表示任意方法
type Rule struct {
	Method string
	Prefix string
	Access Access
	Roles  []userModel.Role
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "" && r.Method != method {
		return false
	}
	return path == r.Prefix || strings.HasPrefix(path, r.Prefix+"/")
}

var (
	adminOnly     = []userModel.Role{userModel.RoleAdmin}
	adminOrExpert = []userModel.Role{userModel.RoleAdmin, userModel.RoleExpert}
)

// DefaultRules 按顺序匹配，第一条命中的规则生效，因此更严格的规则排在前面。
// 未命中任何规则的路径要求登录
var DefaultRules = []Rule{
	{Method: http.MethodGet, Prefix: "/api/auth/users", Access: Roles, Roles: adminOnly},
	{Prefix: "/api/auth", Access: Public},
	{Method: http.MethodGet, Prefix: "/api/depression-test/questions", Access: Public},
	{Method: http.MethodGet, Prefix: "/api/depression-test/categories", Access: Public},
	{Prefix: "/api/contact", Access: Public},
	{Prefix: "/api/feedback", Access: Public},
	{Method: http.MethodPost, Prefix: "/api/payment/webhook", Access: Public},
	{Prefix: "/metrics", Access: Public},
	{Prefix: "/swagger", Access: Public},
	{Prefix: "/health", Access: Public},
	{Prefix: "/api/chatbot", Access: Authenticated},
	{Prefix: "/api/expert", Access: Roles, Roles: adminOrExpert},
	{Prefix: "/api/admin/statistics", Access: Roles, Roles: adminOrExpert},
	{Method: http.MethodGet, Prefix: "/api/admin/test-results/recent", Access: Roles, Roles: adminOrExpert},
	{Prefix: "/api/admin", Access: Roles, Roles: adminOnly},
}

// Gate 基于路径的角色鉴权，需放在 Authenticate 之后
func Gate(rules []Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		rule := Rule{Access: Authenticated}
		for _, r := range rules {
			if r.matches(c.Request.Method, c.Request.URL.Path) {
				rule = r
				break
			}
		}

		if rule.Access == Public {
			c.Next()
			return
		}

		u, ok := identity.CurrentUser(c)
		if !ok {
			dto.AbortWithError(c, response.NewUnauthorizedError("Unauthorized"))
			return
		}

		if rule.Access == Roles && !u.HasRole(rule.Roles...) {
			dto.AbortWithError(c, response.NewForbiddenError("Forbidden"))
			return
		}

		c.Next()
	}
}

// RequireRoles 单个路由上的角色校验
func RequireRoles(roles ...userModel.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := identity.CurrentUser(c)
		if !ok {
			dto.AbortWithError(c, response.NewUnauthorizedError("Unauthorized"))
			return
		}
		if len(roles) > 0 && !u.HasRole(roles...) {
			dto.AbortWithError(c, response.NewForbiddenError("Forbidden"))
			return
		}
		c.Next()
	}
}
