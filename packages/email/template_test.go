package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Render(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     *Template
		data     any
		contains []string
	}{
		{
			name:     "otp",
			tmpl:     OTPTemplate,
			data:     OTPData{Code: "042917", ExpireMinutes: 5},
			contains: []string{"042917", "5 phút"},
		},
		{
			name:     "welcome with action",
			tmpl:     WelcomeTemplate,
			data:     WelcomeData{Name: "An", Email: "an@example.com", ActionURL: "http://localhost:3000"},
			contains: []string{"Xin chào An", "an@example.com", "http://localhost:3000"},
		},
		{
			name:     "password changed",
			tmpl:     PasswordChangedTemplate,
			data:     PasswordChangedData{Name: "Bình"},
			contains: []string{"Xin chào Bình"},
		},
		{
			name:     "feedback",
			tmpl:     FeedbackTemplate,
			data:     FeedbackData{Email: "x@example.com", Feedback: "hay lắm"},
			contains: []string{"x@example.com", "hay lắm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := tt.tmpl.Render(tt.data)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
		})
	}
}

func TestContactTemplate_EscapesInput(t *testing.T) {
	body, err := ContactTemplate.Render(ContactData{
		Name:    "<script>alert(1)</script>",
		Email:   "a@b.c",
		Message: "hello & bye",
	})
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "hello &amp; bye")
}

func TestBuildMessage_EncodesSubject(t *testing.T) {
	msg := buildMessage(&Message{
		From:        "MindMeter <noreply@mindmeter.vn>",
		To:          []string{"a@example.com", "b@example.com"},
		Subject:     SubjectOTP,
		Body:        "<p>hi</p>",
		ContentType: "text/html; charset=UTF-8",
	})

	assert.True(t, strings.HasPrefix(msg, "From: MindMeter <noreply@mindmeter.vn>\r\n"))
	assert.Contains(t, msg, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, msg, "Subject: =?utf-8?q?")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>hi</p>"))
}

func TestClient_SendValidation(t *testing.T) {
	c := NewClient(&Config{Host: "localhost", Username: "noreply@mindmeter.vn"})

	err := c.Send(&Message{To: []string{"a@example.com"}, Subject: "s"})
	assert.Error(t, err)

	err = c.Send(&Message{From: "x", Subject: "s"})
	assert.Error(t, err)

	err = c.Send(&Message{From: "x", To: []string{"a@example.com"}})
	assert.Error(t, err)
}

func TestEnvelopeSender(t *testing.T) {
	tests := []struct {
		name     string
		username string
		from     string
		want     string
	}{
		{"账号优先", "noreply@mindmeter.vn", "MindMeter <other@mindmeter.vn>", "noreply@mindmeter.vn"},
		{"解析显示名称", "", "MindMeter <noreply@mindmeter.vn>", "noreply@mindmeter.vn"},
		{"无法解析时原样返回", "", "not an address", "not an address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, envelopeSender(tt.username, tt.from))
		})
	}
}
