package payment

import (
	"time"

	"gorm.io/datatypes"
)

// Event 已处理的支付回调事件，event_id 唯一，用于回调幂等
type Event struct {
	ID          uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventID     string         `gorm:"column:event_id;type:varchar(255);not null;uniqueIndex" json:"eventId"`
	Type        string         `gorm:"column:type;type:varchar(100);not null" json:"type"`
	PayerEmail  string         `gorm:"column:payer_email;type:varchar(255)" json:"payerEmail"`
	Plan        string         `gorm:"column:plan;type:varchar(20)" json:"plan"`
	Payload     datatypes.JSON `gorm:"column:payload" json:"payload"`
	ProcessedAt time.Time      `gorm:"column:processed_at;autoCreateTime" json:"processedAt"`
}

func (Event) TableName() string {
	return "payment_events"
}
