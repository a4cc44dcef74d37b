package announcement

import (
	"time"

	"mindmeter/internal/model/enum"
	"mindmeter/packages/response"
)

type Type string

const (
	TypeInfo    Type = "INFO"
	TypeWarning Type = "WARNING"
	TypeUrgent  Type = "URGENT"
	TypeGuide   Type = "GUIDE"
)

// ParseType 空串视为 INFO
func ParseType(s string) (Type, *response.BusinessError) {
	if s == "" {
		return TypeInfo, nil
	}
	return enum.Parse("announcement type", s, TypeInfo, TypeWarning, TypeUrgent, TypeGuide)
}

type Announcement struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title            string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content          string    `gorm:"column:content;type:text;not null" json:"content"`
	AnnouncementType Type      `gorm:"column:announcement_type;type:varchar(20);not null;default:'INFO'" json:"announcementType"`
	IsActive         bool      `gorm:"column:is_active;not null" json:"isActive"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Announcement) TableName() string {
	return "system_announcements"
}
