package dto

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	res "mindmeter/packages/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, res.OK(data))
}

// MessageResponse 只返回提示信息的成功响应
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, res.Notice(message))
}

// ErrorResponse 按错误码写入对应的 HTTP 状态
func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	if err.Err != nil {
		slog.ErrorContext(c.Request.Context(), err.Msg,
			"error", err.Err,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDKey),
		)
	}
	c.JSON(err.Code.HTTPStatus(), err.Body())
}

// AbortWithError 中间件中使用，写入错误并终止后续处理
func AbortWithError(c *gin.Context, err *res.BusinessError) {
	ErrorResponse(c, err)
	c.Abort()
}

// RequestIDKey gin 上下文中请求 ID 的键
const RequestIDKey = "request_id"

// ValidationErrorResponse 处理验证错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		firstErr := validationErrs[0]
		field := lowerFirst(firstErr.Field())

		var message string
		switch firstErr.Tag() {
		case "required":
			message = fmt.Sprintf("field '%s' is required", field)
		case "email":
			message = fmt.Sprintf("field '%s' must be a valid email", field)
		case "max":
			message = fmt.Sprintf("field '%s' must not exceed %s", field, firstErr.Param())
		case "min":
			message = fmt.Sprintf("field '%s' must be at least %s", field, firstErr.Param())
		case "oneof":
			message = fmt.Sprintf("field '%s' must be one of: %s", field, firstErr.Param())
		default:
			message = fmt.Sprintf("field '%s' failed on '%s'", field, firstErr.Tag())
		}

		ErrorResponse(c, res.NewBusinessError(
			res.WithErrorCode(res.ParseError),
			res.WithErrorMessage(message),
		))
		return
	}

	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage("invalid request body"),
	))
}

// lowerFirst 结构体字段名转为 JSON 里的 camelCase
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
