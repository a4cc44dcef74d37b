package middleware

import (
	"log/slog"
	"strings"

	"mindmeter/internal/identity"
	userModel "mindmeter/internal/model/user"
	"mindmeter/internal/pkg"

	"github.com/gin-gonic/gin"
)

// bearerToken 从 Authorization header 中取出令牌
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

// Authenticate JWT 过滤器。令牌缺失、无效、主体不存在或账号未启用时
// 不拦截请求，只是不写入当前用户，由 Gate 决定是否放行
func Authenticate(resolver *identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := pkg.ParseAccessToken(token)
		if err != nil {
			slog.DebugContext(c.Request.Context(), "令牌校验失败", "error", err)
			c.Next()
			return
		}

		u, bizErr := resolver.Resolve(c.Request.Context(), claims.Subject)
		if bizErr != nil {
			slog.DebugContext(c.Request.Context(), "令牌主体无法解析", "subject", claims.Subject, "error", bizErr)
			c.Next()
			return
		}

		if u.Status != userModel.StatusActive {
			slog.DebugContext(c.Request.Context(), "账号未启用", "user_id", u.ID, "status", u.Status)
			c.Next()
			return
		}

		identity.SetCurrentUser(c, u)
		c.Next()
	}
}
