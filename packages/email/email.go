package email

import (
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

const dialTimeout = 10 * time.Second

// Config 邮件服务配置
type Config struct {
	Host     string `koanf:"host"`     // SMTP 服务器地址，如 smtp.gmail.com
	Port     int    `koanf:"port"`     // SMTP 端口，通常 587 (TLS) 或 465 (SSL)
	Username string `koanf:"username"` // 发件人邮箱
	Password string `koanf:"password"` // 邮箱密码或授权码
	From     string `koanf:"from"`     // 发件人显示名称，如 "MindMeter <noreply@mindmeter.vn>"
	UseTLS   bool   `koanf:"tls"`      // 是否使用 TLS
}

// Message 邮件消息
type Message struct {
	From        string
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Body        string
	ContentType string // 默认 "text/plain"，可设为 "text/html"
}

// Client 邮件客户端
type Client struct {
	config *Config
}

// NewClient 创建邮件客户端
func NewClient(config *Config) *Client {
	if config.Port == 0 {
		config.Port = 587
	}
	if config.From == "" {
		config.From = config.Username
	}
	return &Client{config: config}
}

// Send 发送邮件
func (c *Client) Send(msg *Message) error {
	if msg.From == "" {
		return fmt.Errorf("发件人不能为空")
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("收件人不能为空")
	}
	if msg.Subject == "" {
		return fmt.Errorf("邮件主题不能为空")
	}

	if msg.ContentType == "" {
		msg.ContentType = "text/plain; charset=UTF-8"
	}

	message := buildMessage(msg)

	recipients := append([]string{}, msg.To...)
	recipients = append(recipients, msg.Cc...)
	recipients = append(recipients, msg.Bcc...)

	addr := net.JoinHostPort(c.config.Host, strconv.Itoa(c.config.Port))
	return c.deliver(addr, envelopeSender(c.config.Username, msg.From), recipients, []byte(message))
}

// envelopeSender MAIL FROM 优先使用登录账号，其次取显示名称中的地址
func envelopeSender(username, from string) string {
	if username != "" {
		return username
	}
	if addr, err := mail.ParseAddress(from); err == nil {
		return addr.Address
	}
	return from
}

// buildMessage 组装邮件头和正文，头部顺序固定
func buildMessage(msg *Message) string {
	var b strings.Builder
	b.WriteString("From: " + msg.From + "\r\n")
	b.WriteString("To: " + strings.Join(msg.To, ", ") + "\r\n")
	if len(msg.Cc) > 0 {
		b.WriteString("Cc: " + strings.Join(msg.Cc, ", ") + "\r\n")
	}
	b.WriteString("Subject: " + encodeSubject(msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: " + msg.ContentType + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return b.String()
}

// encodeSubject 非 ASCII 主题按 RFC 2047 编码
func encodeSubject(subject string) string {
	return mime.QEncoding.Encode("utf-8", subject)
}

// deliver 配置了 TLS 或服务器声明 STARTTLS 时先升级连接；未配置账号时跳过认证
func (c *Client) deliver(addr, from string, to []string, msg []byte) error {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return fmt.Errorf("连接 SMTP 服务器失败: %w", err)
	}
	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("SMTP 握手失败: %w", err)
	}
	defer client.Close()

	starttls, _ := client.Extension("STARTTLS")
	if c.config.UseTLS || c.config.Port == 587 || starttls {
		if err = client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
			return fmt.Errorf("启动 TLS 失败: %w", err)
		}
	}

	if c.config.Username != "" {
		auth := smtp.PlainAuth("", c.config.Username, c.config.Password, c.config.Host)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP 认证失败: %w", err)
		}
	}

	if err = client.Mail(from); err != nil {
		return fmt.Errorf("设置发件人失败: %w", err)
	}
	for _, recipient := range to {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("设置收件人 %s 失败: %w", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("准备发送邮件内容失败: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("写入邮件内容失败: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("关闭邮件内容写入失败: %w", err)
	}
	return client.Quit()
}

// SendHTML 发送 HTML 邮件，发件人取配置中的 From
func (c *Client) SendHTML(to string, subject string, htmlBody string) error {
	return c.Send(&Message{
		From:        c.config.From,
		To:          []string{to},
		Subject:     subject,
		Body:        htmlBody,
		ContentType: "text/html; charset=UTF-8",
	})
}
