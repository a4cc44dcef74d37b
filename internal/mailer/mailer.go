package mailer

import (
	"log/slog"

	"mindmeter/packages/email"
)

// Mailer 发送 HTML 邮件
type Mailer interface {
	SendHTML(to, subject, html string) error
}

// New 未配置 SMTP 主机时返回只写日志的实现，便于本地开发
func New(cfg *email.Config) Mailer {
	if cfg == nil || cfg.Host == "" {
		slog.Warn("SMTP 未配置，邮件只写入日志")
		return logMailer{}
	}
	return email.NewClient(cfg)
}

// SendTemplate 渲染模板后发送
func SendTemplate(m Mailer, to, subject string, tmpl *email.Template, data any) error {
	body, err := tmpl.Render(data)
	if err != nil {
		return err
	}
	return m.SendHTML(to, subject, body)
}

type logMailer struct{}

func (logMailer) SendHTML(to, subject, _ string) error {
	slog.Info("邮件未发送（SMTP 未配置）", "to", to, "subject", subject)
	return nil
}
