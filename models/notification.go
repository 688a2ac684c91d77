package models

import "time"

// Notification 社交动作产生的通知（好友请求、接受、拒绝、活动邀请等）
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `json:"user_id" gorm:"index;not null"` // 接收者
	SenderID  uint      `json:"sender_id" gorm:"index;not null"`
	Type      string    `json:"type" gorm:"size:50;not null"`
	Content   string    `json:"content" gorm:"size:500"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

const (
	NotificationFriendRequest         = "FriendRequest"
	NotificationFriendRequestAccepted = "FriendRequestAccepted"
	NotificationFriendRequestRejected = "FriendRequestRejected"
	NotificationEventInvitation       = "EventInvitation"
)
