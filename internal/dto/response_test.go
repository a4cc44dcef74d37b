package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	res "mindmeter/packages/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type bindReq struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required,max=5"`
}

func perform(t *testing.T, h gin.HandlerFunc, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	r := gin.New()
	r.POST("/x/:id", h)

	req := httptest.NewRequest(http.MethodPost, "/x/abc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func TestErrorResponse_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *res.BusinessError
		status int
	}{
		{"not found", res.NewNotFoundError("User not found"), http.StatusNotFound},
		{"forbidden", res.NewForbiddenError("Forbidden"), http.StatusForbidden},
		{"conflict", res.NewConflictError("Email already exists"), http.StatusConflict},
		{"internal", res.NewInternalError("save failed", errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := perform(t, func(c *gin.Context) { ErrorResponse(c, tt.err) }, "{}")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.err.Msg, body["error"])
			assert.EqualValues(t, tt.err.Code, body["code"])
		})
	}
}

func TestSuccessResponse_Envelope(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) { SuccessResponse(c, gin.H{"a": 1}) }, "{}")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["message"])
	assert.EqualValues(t, 100, body["code"])
	assert.Equal(t, map[string]any{"a": float64(1)}, body["data"])
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"缺少必填字段", `{"name":"an"}`, "field 'email' is required"},
		{"邮箱格式错误", `{"email":"nope","name":"an"}`, "field 'email' must be a valid email"},
		{"超长", `{"email":"a@b.co","name":"toolong"}`, "field 'name' must not exceed 5"},
		{"非法 JSON", `{`, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := perform(t, func(c *gin.Context) {
				var req bindReq
				if BindJSON(c, &req) {
					SuccessResponse(c, nil)
				}
			}, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestParseIDParam_Invalid(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		if _, ok := ParseIDParam(c, "id"); ok {
			SuccessResponse(c, nil)
		}
	}, "{}")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id", body["error"])
}
