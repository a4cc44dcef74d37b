package model

import (
	"fmt"

	"mindmeter/internal/model/advice"
	"mindmeter/internal/model/announcement"
	"mindmeter/internal/model/expertnote"
	"mindmeter/internal/model/payment"
	"mindmeter/internal/model/question"
	"mindmeter/internal/model/testresult"
	"mindmeter/internal/model/user"

	"gorm.io/gorm"
)

// GetModels 返回所有需要迁移的模型，顺序即外键依赖顺序
func GetModels() []interface{} {
	return []interface{}{
		&user.User{},
		&question.Question{},
		&question.Option{},
		&testresult.TestResult{},
		&testresult.Answer{},
		&announcement.Announcement{},
		&advice.Message{},
		&expertnote.Note{},
		&payment.Event{},
	}
}

func InitTable(db *gorm.DB) error {
	if err := db.AutoMigrate(GetModels()...); err != nil {
		return fmt.Errorf("数据库表迁移失败: %w", err)
	}
	return nil
}
