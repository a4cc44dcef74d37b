package identity

import "github.com/gin-gonic/gin"

const currentUserKey = "current_user"

// SetCurrentUser 由认证中间件写入
func SetCurrentUser(c *gin.Context, u *AuthenticatedUser) {
	c.Set(currentUserKey, u)
}

// CurrentUser 读取当前请求的已认证用户
func CurrentUser(c *gin.Context) (*AuthenticatedUser, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	u, ok := v.(*AuthenticatedUser)
	return u, ok && u != nil
}
