package response

type ResponseCode int

// Success 成功响应的业务码
const Success ResponseCode = 100

const successMessage = "success"

// Response 成功响应的统一信封
type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data"`
}

// ErrorBody 失败响应体，error 字段供前端直接展示
type ErrorBody struct {
	Error string       `json:"error"`
	Code  ResponseCode `json:"code"`
}

// OK 携带数据的成功响应
func OK(data any) Response {
	return Response{Message: successMessage, Code: Success, Data: data}
}

// Notice 只有提示信息、data 为 null 的成功响应
func Notice(message string) Response {
	if message == "" {
		message = successMessage
	}
	return Response{Message: message, Code: Success}
}

// Body 业务错误对应的响应体
func (e *BusinessError) Body() ErrorBody {
	return ErrorBody{Error: e.Msg, Code: e.Code}
}
