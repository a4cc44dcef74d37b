package contact

import (
	"errors"
	"testing"

	"mindmeter/config"
	"mindmeter/internal/mailer"
	"mindmeter/packages/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var receivers = config.MailConfig{
	ContactReceiver:  "support@mindmeter.test",
	FeedbackReceiver: "feedback@mindmeter.test",
}

func TestContactService_Contact(t *testing.T) {
	rec := &mailer.Recorder{}
	service := NewContactService(rec, receivers)

	err := service.Contact(&ContactRequest{
		Name:    " Lan ",
		Email:   "lan@example.com",
		Message: "<script>alert(1)</script>",
	})
	require.Nil(t, err)

	sent, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "support@mindmeter.test", sent.To)
	assert.Equal(t, "[MindMeter] New Contact Message from Lan", sent.Subject)
	assert.NotContains(t, sent.HTML, "<script>")
	assert.Contains(t, sent.HTML, "&lt;script&gt;")
}

func TestContactService_Feedback(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		wantSender string
	}{
		{name: "with email", email: "a@b.com", wantSender: "a@b.com"},
		{name: "anonymous", email: "", wantSender: anonymousSender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &mailer.Recorder{}
			service := NewContactService(rec, receivers)

			require.Nil(t, service.Feedback(&FeedbackRequest{Email: tt.email, Feedback: "Chatbot trả lời chậm"}))

			sent, ok := rec.Last()
			require.True(t, ok)
			assert.Equal(t, "feedback@mindmeter.test", sent.To)
			assert.Contains(t, sent.HTML, tt.wantSender)
			assert.Contains(t, sent.HTML, "Chatbot trả lời chậm")
		})
	}
}

func TestContactService_SendFailure(t *testing.T) {
	rec := &mailer.Recorder{Err: errors.New("smtp down")}
	service := NewContactService(rec, receivers)

	err := service.Contact(&ContactRequest{Name: "A", Email: "a@b.com", Message: "hi"})
	require.NotNil(t, err)
	assert.Equal(t, response.Fail, err.Code)
	assert.Equal(t, 500, err.Code.HTTPStatus())

	service = NewContactService(&mailer.Recorder{}, config.MailConfig{})
	err = service.Feedback(&FeedbackRequest{Feedback: "x"})
	require.NotNil(t, err)
	assert.Equal(t, response.Fail, err.Code)
}
