package response

import "net/http"

// 业务错误码
const (
	// 失败
	Fail ResponseCode = 0
	// 参数解析错误
	ParseError ResponseCode = 1
	// 参数错误（枚举值非法、字段不合法等）
	InvalidParameter ResponseCode = 2
	// 未认证
	Unauthorized ResponseCode = 3
	// 无权限
	Forbidden ResponseCode = 4
	// 资源不存在
	NotFound ResponseCode = 5
	// 资源冲突，如邮箱已注册
	Conflict ResponseCode = 6
)

// HTTPStatus 业务错误码对应的 HTTP 状态码
func (c ResponseCode) HTTPStatus() int {
	switch c {
	case ParseError, InvalidParameter:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type BusinessError struct {
	Code ResponseCode
	Msg  string
	Err  error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// 常用错误的便捷构造函数

func NewValidationError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(InvalidParameter), WithErrorMessage(msg))
}

func NewNotFoundError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(NotFound), WithErrorMessage(msg))
}

func NewForbiddenError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(Forbidden), WithErrorMessage(msg))
}

func NewUnauthorizedError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(Unauthorized), WithErrorMessage(msg))
}

func NewConflictError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(Conflict), WithErrorMessage(msg))
}

// NewInternalError 包装持久化等底层错误
func NewInternalError(msg string, err error) *BusinessError {
	return NewBusinessError(WithErrorCode(Fail), WithErrorMessage(msg), WithError(err))
}

// IsCode 判断 err 是否为指定错误码的 BusinessError
func IsCode(err error, code ResponseCode) bool {
	be, ok := err.(*BusinessError)
	return ok && be != nil && be.Code == code
}
