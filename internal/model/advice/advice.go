package advice

import (
	"time"

	"mindmeter/internal/model/enum"
	"mindmeter/packages/response"
)

type MessageType string

const (
	TypeAdvice      MessageType = "ADVICE"
	TypeAppointment MessageType = "APPOINTMENT"
	TypeUrgent      MessageType = "URGENT"
	TypeGeneral     MessageType = "GENERAL"
)

// ParseMessageType 空串视为 GENERAL
func ParseMessageType(s string) (MessageType, *response.BusinessError) {
	if s == "" {
		return TypeGeneral, nil
	}
	return enum.Parse("message type", s, TypeAdvice, TypeAppointment, TypeUrgent, TypeGeneral)
}

// Message 专家与用户之间的建议消息，只有接收者可以标记已读
type Message struct {
	ID          uint        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SenderID    uint        `gorm:"column:sender_id;not null;index" json:"senderId"`
	ReceiverID  uint        `gorm:"column:receiver_id;not null;index" json:"receiverId"`
	Message     string      `gorm:"column:message;type:text;not null" json:"message"`
	MessageType MessageType `gorm:"column:message_type;type:varchar(20);not null;default:'GENERAL'" json:"messageType"`
	IsRead      bool        `gorm:"column:is_read;not null;default:false" json:"isRead"`
	SentAt      time.Time   `gorm:"column:sent_at;not null" json:"sentAt"`
}

func (Message) TableName() string {
	return "advice_messages"
}
