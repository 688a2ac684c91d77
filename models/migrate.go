package models

import (
	"log"

	"sportmate/config"
)

// Migrate 自动迁移所有表
func Migrate() {
	err := config.DB.AutoMigrate(
		&User{},
		&Friendship{},
		&Conversation{},
		&Message{},
		&Notification{},
		&PlayerSport{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
