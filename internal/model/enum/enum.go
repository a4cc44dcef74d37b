package enum

import (
	"strings"

	"mindmeter/packages/response"
)

// Parse 大小写不敏感地匹配枚举值，未知值返回参数错误
func Parse[T ~string](kind, raw string, values ...T) (T, *response.BusinessError) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for _, v := range values {
		if string(v) == normalized {
			return v, nil
		}
	}
	var zero T
	return zero, response.NewValidationError("invalid " + kind + ": " + raw)
}
