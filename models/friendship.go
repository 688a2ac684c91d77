package models

import "time"

// Friendship 好友关系（有方向：UserID 发起，FriendID 接收）
// Status: "pending", "accepted", "rejected"
type Friendship struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	FriendID  uint      `json:"friend_id" gorm:"index;not null"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipRejected = "rejected"
)
