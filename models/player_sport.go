package models

import "time"

// PlayerSport 用户注册的运动项目
type PlayerSport struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	Sport      string    `json:"sport" gorm:"size:100;not null"`
	SkillLevel string    `json:"skill_level" gorm:"size:50"`
	CreatedAt  time.Time `json:"created_at"`
}
