package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template 邮件模板
type Template struct {
	tmpl *template.Template
}

// NewTemplate 从 HTML 字符串创建模板
func NewTemplate(htmlContent string) (*Template, error) {
	tmpl, err := template.New("email").Parse(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("解析邮件模板失败: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

// MustTemplate 用于包级预编译模板，解析失败直接 panic
func MustTemplate(htmlContent string) *Template {
	t, err := NewTemplate(htmlContent)
	if err != nil {
		panic(err)
	}
	return t
}

// Render 渲染模板，数据中的字符串会被 html/template 自动转义
func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("渲染邮件模板失败: %w", err)
	}
	return buf.String(), nil
}

// 邮件主题
const (
	SubjectOTP             = "[MindMeter] Mã OTP đặt lại mật khẩu"
	SubjectWelcome         = "[MindMeter] Chào mừng bạn đến với MindMeter - Đăng ký tài khoản thành công"
	SubjectPasswordChanged = "[MindMeter] Mật khẩu của bạn đã được thay đổi"
	SubjectFeedback        = "Phản hồi mới từ MindMeter Chatbot"
)

// SubjectContact 联系表单邮件主题
func SubjectContact(name string) string {
	return "[MindMeter] New Contact Message from " + name
}

const layoutHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 560px; margin: 0 auto; padding: 20px; }
        .header { background-color: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .content { background-color: #f9fafb; padding: 28px; border: 1px solid #e5e7eb; }
        .code { font-size: 32px; font-weight: bold; color: #2563eb; text-align: center;
                letter-spacing: 6px; padding: 18px; background-color: #fff; border: 2px dashed #2563eb; margin: 20px 0; }
        .footer { text-align: center; padding: 16px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
<div class="container">`

const layoutFoot = `
    <div class="footer">
        <p>Email này được gửi tự động từ MindMeter, vui lòng không trả lời.</p>
    </div>
</div>
</body>
</html>`

// OTPTemplate 找回密码验证码邮件
var OTPTemplate = MustTemplate(layoutHead + `
    <div class="header"><h2>Đặt lại mật khẩu</h2></div>
    <div class="content">
        <p>Xin chào,</p>
        <p>Chúng tôi đã nhận được yêu cầu đặt lại mật khẩu cho tài khoản MindMeter của bạn. Mã OTP của bạn là:</p>
        <div class="code">{{.Code}}</div>
        <p>Mã có hiệu lực trong <b>{{.ExpireMinutes}} phút</b>. Không chia sẻ mã này với bất kỳ ai.</p>
        <p>Nếu bạn không yêu cầu đặt lại mật khẩu, hãy bỏ qua email này.</p>
    </div>` + layoutFoot)

// OTPData 验证码模板数据
type OTPData struct {
	Code          string
	ExpireMinutes int
}

// WelcomeTemplate 注册成功欢迎邮件
var WelcomeTemplate = MustTemplate(layoutHead + `
    <div class="header"><h2>Chào mừng đến với MindMeter</h2></div>
    <div class="content">
        <p>Xin chào {{.Name}},</p>
        <p>Tài khoản <b>{{.Email}}</b> của bạn đã được tạo thành công.</p>
        <p>Bạn có thể làm các bài đánh giá sức khỏe tâm thần và nhận lời khuyên từ chuyên gia bất cứ lúc nào.</p>
        {{if .ActionURL}}<p style="text-align:center;"><a href="{{.ActionURL}}">Bắt đầu ngay</a></p>{{end}}
    </div>` + layoutFoot)

// WelcomeData 欢迎邮件模板数据
type WelcomeData struct {
	Name      string
	Email     string
	ActionURL string
}

// PasswordChangedTemplate 密码修改通知邮件
var PasswordChangedTemplate = MustTemplate(layoutHead + `
    <div class="header"><h2>Mật khẩu đã được thay đổi</h2></div>
    <div class="content">
        <p>Xin chào {{.Name}},</p>
        <p>Mật khẩu tài khoản MindMeter của bạn vừa được thay đổi thành công.</p>
        <p>Nếu bạn không thực hiện thay đổi này, hãy liên hệ với chúng tôi ngay.</p>
    </div>` + layoutFoot)

// PasswordChangedData 密码修改通知模板数据
type PasswordChangedData struct {
	Name string
}

// ContactTemplate 联系表单转发邮件
var ContactTemplate = MustTemplate(layoutHead + `
    <div class="header"><h2>New Contact Message from MindMeter</h2></div>
    <div class="content">
        <table style="width: 100%;">
            <tr><td style="font-weight: bold; width: 120px;">Name:</td><td>{{.Name}}</td></tr>
            <tr><td style="font-weight: bold;">Email:</td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
            <tr><td style="font-weight: bold; vertical-align: top;">Message:</td><td style="white-space: pre-line;">{{.Message}}</td></tr>
        </table>
    </div>` + layoutFoot)

// ContactData 联系表单模板数据
type ContactData struct {
	Name    string
	Email   string
	Message string
}

// FeedbackTemplate 聊天机器人反馈转发邮件
var FeedbackTemplate = MustTemplate(layoutHead + `
    <div class="header"><h2>Phản hồi mới từ MindMeter Chatbot</h2></div>
    <div class="content">
        <p><b>Email người gửi:</b> {{.Email}}</p>
        <p><b>Nội dung phản hồi:</b></p>
        <div style="background:#fff;border-radius:8px;padding:16px 12px;border:1px solid #e0e7ff;white-space:pre-line;">{{.Feedback}}</div>
    </div>` + layoutFoot)

// FeedbackData 反馈模板数据
type FeedbackData struct {
	Email    string
	Feedback string
}
