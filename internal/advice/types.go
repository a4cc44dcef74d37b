package advice

import (
	"time"

	adviceModel "mindmeter/internal/model/advice"
)

type SendRequest struct {
	ReceiverID  uint   `json:"receiverId" binding:"required"`
	Message     string `json:"message" binding:"required"`
	MessageType string `json:"messageType"`
}

// MessageDTO senderName 只在收件列表中填充
type MessageDTO struct {
	ID          uint                    `json:"id"`
	SenderID    uint                    `json:"senderId"`
	SenderName  string                  `json:"senderName,omitempty"`
	ReceiverID  uint                    `json:"receiverId"`
	Message     string                  `json:"message"`
	MessageType adviceModel.MessageType `json:"messageType"`
	IsRead      bool                    `json:"isRead"`
	SentAt      time.Time               `json:"sentAt"`
}

type messageRow struct {
	adviceModel.Message
	SenderFirstName string
	SenderLastName  string
}

func toDTO(m *adviceModel.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID,
		SenderID:    m.SenderID,
		ReceiverID:  m.ReceiverID,
		Message:     m.Message,
		MessageType: m.MessageType,
		IsRead:      m.IsRead,
		SentAt:      m.SentAt,
	}
}

type UnreadCount struct {
	Count int64 `json:"count"`
}
