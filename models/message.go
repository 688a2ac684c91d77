package models

import "time"

// Message 会话消息，创建后除 IsRead 外不再修改
type Message struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID string    `json:"conversation_id" gorm:"type:varchar(36);index;not null"`
	SenderID       uint      `json:"sender_id" gorm:"index;not null"`
	ReceiverID     uint      `json:"receiver_id" gorm:"index;not null"`
	Content        string    `json:"content" gorm:"type:text"`
	Type           string    `json:"type" gorm:"type:varchar(20);default:'text'"` // text, image, file
	SentAt         time.Time `json:"sent_at" gorm:"index"`
	IsRead         bool      `json:"is_read" gorm:"default:false"`
}
