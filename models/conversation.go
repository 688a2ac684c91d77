package models

import "time"

// Conversation 两人会话。双方各有一个删除标记，
// 两个标记都为 true 时才物理删除（连同消息）。
type Conversation struct {
	ConversationID      string    `gorm:"primaryKey;type:varchar(36)" json:"conversation_id"`
	StarterID           uint      `gorm:"index;not null" json:"starter_id"`
	ReceiverID          uint      `gorm:"index;not null" json:"receiver_id"`
	IsDeletedByStarter  bool      `gorm:"default:false" json:"is_deleted_by_starter"`
	IsDeletedByReceiver bool      `gorm:"default:false" json:"is_deleted_by_receiver"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`

	// 关联发起方和接收方
	Starter  User `gorm:"foreignKey:StarterID;references:ID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID;references:ID" json:"-"`
}

// HasParty 判断用户是否是会话的一方
func (c *Conversation) HasParty(userID uint) bool {
	return c.StarterID == userID || c.ReceiverID == userID
}

// DeletedBy 返回该用户对应的删除标记
func (c *Conversation) DeletedBy(userID uint) bool {
	if c.StarterID == userID {
		return c.IsDeletedByStarter
	}
	return c.IsDeletedByReceiver
}

// OtherParty 返回会话里对方的用户ID
func (c *Conversation) OtherParty(userID uint) uint {
	if c.StarterID == userID {
		return c.ReceiverID
	}
	return c.StarterID
}
