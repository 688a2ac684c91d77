package services

import (
	"time"

	"sportmate/models"

	"gorm.io/gorm"
)

// CreateNotification 在事务内给用户写入一条通知
func CreateNotification(tx *gorm.DB, userID, senderID uint, notificationType, content string) error {
	notification := models.Notification{
		UserID:    userID,
		SenderID:  senderID,
		Type:      notificationType,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	return tx.Create(&notification).Error
}
