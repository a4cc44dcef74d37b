package auth

import (
	"net/http"

	"mindmeter/internal/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register 邮箱注册
// @Summary 邮箱注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} response.Response{data=AuthResponse}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

// Login 邮箱密码登录
// @Summary 邮箱密码登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=AuthResponse}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

// CreateAnonymous 创建匿名账号
// @Summary 创建匿名账号
// @Tags 认证
// @Produce json
// @Success 200 {object} response.Response{data=AuthResponse}
// @Router /auth/anonymous/create [post]
func (h *AuthHandler) CreateAnonymous(c *gin.Context) {
	result, err := h.service.CreateAnonymous(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

// UpgradeAnonymous 匿名账号转正式账号
// @Summary 匿名账号转正式账号
// @Tags 认证
// @Accept json
// @Produce json
// @Param id path int true "匿名用户ID"
// @Param request body UpgradeRequest true "账号信息"
// @Success 200 {object} response.Response{data=AuthResponse}
// @Router /auth/anonymous/upgrade/{id} [post]
func (h *AuthHandler) UpgradeAnonymous(c *gin.Context) {
	id, ok := dto.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpgradeRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.UpgradeAnonymous(c.Request.Context(), id, &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

// ForgotPassword 发送找回密码验证码
// @Summary 发送找回密码验证码
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "邮箱"
// @Success 200 {object} response.Response
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	msg, err := h.service.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.MessageResponse(c, msg)
}

// ResetPassword 校验验证码并重置密码
// @Summary 校验验证码并重置密码
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "邮箱、验证码和新密码"
// @Success 200 {object} response.Response
// @Router /auth/forgot-password/verify-otp [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req VerifyOTPRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.MessageResponse(c, "Đổi mật khẩu thành công!")
}

func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	target, err := h.service.GoogleLoginURL(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	c.Redirect(http.StatusFound, target)
}

func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	target, err := h.service.GoogleCallback(c.Request.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	c.Redirect(http.StatusFound, target)
}
