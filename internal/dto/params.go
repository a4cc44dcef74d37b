package dto

import (
	"strconv"

	"mindmeter/internal/identity"
	res "mindmeter/packages/response"

	"github.com/gin-gonic/gin"
)

// ParseIDParam 解析路径中的数字 ID，失败时直接写入 400 响应
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		ErrorResponse(c, res.NewBusinessError(
			res.WithErrorCode(res.ParseError),
			res.WithErrorMessage("invalid "+name),
		))
		return 0, false
	}
	return uint(id), true
}

// BindJSON 绑定请求体，失败时写入校验错误
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		ValidationErrorResponse(c, err)
		return false
	}
	return true
}

// CurrentUser 读取已认证用户，未认证时写入 401
func CurrentUser(c *gin.Context) (*identity.AuthenticatedUser, bool) {
	u, ok := identity.CurrentUser(c)
	if !ok {
		ErrorResponse(c, res.NewUnauthorizedError("Unauthorized"))
		return nil, false
	}
	return u, true
}
