package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName     string    `json:"username" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:255;unique;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         string    `json:"role" gorm:"size:20;default:'User'"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender" gorm:"size:20"`
	Avatar       string    `json:"avatar"`
	Location     string    `json:"location"`
	IsOnline     bool      `json:"is_online" gorm:"default:false"`
	LastActive   time.Time `json:"last_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile 对外展示的用户信息（好友列表、会话、通知里用）
type PublicProfile struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"username"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		UserID:   u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Avatar:   u.Avatar,
	}
}
