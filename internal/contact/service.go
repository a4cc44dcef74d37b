package contact

import (
	"errors"
	"strings"

	"mindmeter/config"
	"mindmeter/internal/mailer"
	"mindmeter/packages/email"
	"mindmeter/packages/response"
)

const anonymousSender = "Ẩn danh"

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=5000"`
}

type FeedbackRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Feedback string `json:"feedback" binding:"required,max=5000"`
}

// ContactService 将联系表单和反馈转发到配置的收件邮箱
type ContactService interface {
	Contact(req *ContactRequest) *response.BusinessError
	Feedback(req *FeedbackRequest) *response.BusinessError
}

type contactService struct {
	mailer    mailer.Mailer
	receivers config.MailConfig
}

func NewContactService(m mailer.Mailer, receivers config.MailConfig) ContactService {
	return &contactService{mailer: m, receivers: receivers}
}

func (s *contactService) Contact(req *ContactRequest) *response.BusinessError {
	name := strings.TrimSpace(req.Name)
	return s.relay(s.receivers.ContactReceiver, email.SubjectContact(name), email.ContactTemplate, map[string]string{
		"Name":    name,
		"Email":   strings.TrimSpace(req.Email),
		"Message": req.Message,
	})
}

func (s *contactService) Feedback(req *FeedbackRequest) *response.BusinessError {
	sender := strings.TrimSpace(req.Email)
	if sender == "" {
		sender = anonymousSender
	}
	return s.relay(s.receivers.FeedbackReceiver, email.SubjectFeedback, email.FeedbackTemplate, map[string]string{
		"Email":    sender,
		"Feedback": req.Feedback,
	})
}

func (s *contactService) relay(to, subject string, tmpl *email.Template, data map[string]string) *response.BusinessError {
	if to == "" {
		return response.NewInternalError("failed to send message", errors.New("mail receiver is not configured"))
	}
	if err := mailer.SendTemplate(s.mailer, to, subject, tmpl, data); err != nil {
		return response.NewInternalError("failed to send message", err)
	}
	return nil
}
