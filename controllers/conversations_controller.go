package controllers

import (
	"log"
	"net/http"
	"time"

	"sportmate/config"
	"sportmate/models"
	"sportmate/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageView struct {
	MessageID  uint      `json:"message_id"`
	Content    string    `json:"content"`
	Type       string    `json:"type"`
	SentAt     time.Time `json:"sent_at"`
	IsRead     bool      `json:"is_read"`
	IsSentByMe bool      `json:"is_sent_by_me"`
}

// 获取会话列表（只含当前用户未删除的会话）
func GetConversations(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	var conversations []models.Conversation
	err := config.DB.
		Preload("Starter").
		Preload("Receiver").
		Where("(starter_id = ? AND is_deleted_by_starter = ?) OR (receiver_id = ? AND is_deleted_by_receiver = ?)",
			userInfo.ID, false, userInfo.ID, false).
		Order("created_at ASC").
		Find(&conversations).Error
	if err != nil {
		log.Println("Error fetching conversations:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}

	formatted := make([]gin.H, 0, len(conversations))
	for _, conv := range conversations {
		var otherUser models.User
		if conv.StarterID == userInfo.ID {
			otherUser = conv.Receiver
		} else {
			otherUser = conv.Starter
		}

		entry := gin.H{
			"conversation_id":   conv.ConversationID,
			"other_participant": otherUser.Public(),
		}

		// 最近一条消息
		var lastMessage models.Message
		err := config.DB.
			Where("conversation_id = ?", conv.ConversationID).
			Order("sent_at DESC").
			First(&lastMessage).Error
		if err == nil {
			entry["last_message"] = gin.H{
				"content": lastMessage.Content,
				"sent_at": lastMessage.SentAt,
				"is_read": lastMessage.IsRead,
			}
		} else {
			entry["last_message"] = nil
		}
		formatted = append(formatted, entry)
	}

	utils.RespondSuccess(c, formatted, nil)
}

// 创建会话（已存在则复用，同时恢复当前用户的可见性）
func CreateConversationHandler(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	var requestData struct {
		ReceiverID uint `json:"receiver_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if requestData.ReceiverID == userInfo.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot create a conversation with yourself"})
		return
	}

	var receiverUser models.User
	if err := config.DB.First(&receiverUser, requestData.ReceiverID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receiver does not exist"})
		return
	}

	// 查找是否已有两人会话
	var existing models.Conversation
	err := config.DB.
		Where("(starter_id = ? AND receiver_id = ?) OR (starter_id = ? AND receiver_id = ?)",
			userInfo.ID, requestData.ReceiverID, requestData.ReceiverID, userInfo.ID).
		First(&existing).Error
	if err == nil {
		// 重新发起会话时清掉自己的删除标记
		if existing.DeletedBy(userInfo.ID) {
			column := "is_deleted_by_receiver"
			if existing.StarterID == userInfo.ID {
				column = "is_deleted_by_starter"
			}
			if err := config.DB.Model(&existing).Update(column, false).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore conversation"})
				return
			}
		}
		utils.RespondSuccess(c, gin.H{"conversation_id": existing.ConversationID}, nil)
		return
	}

	newConversation := models.Conversation{
		ConversationID: uuid.New().String(),
		StarterID:      userInfo.ID,
		ReceiverID:     requestData.ReceiverID,
	}
	if err := config.DB.Create(&newConversation).Error; err != nil {
		log.Println("Error creating conversation:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create conversation"})
		return
	}

	utils.RespondSuccess(c, gin.H{"conversation_id": newConversation.ConversationID}, nil)
}

// loadConversation 取会话并做归属校验。
// 不存在 → 404；非会话一方 → 403；自己已删除 → deletedStatus。
func loadConversation(c *gin.Context, userID uint, deletedStatus int) (*models.Conversation, bool) {
	conversationID := c.Param("conversation_id")

	var conversation models.Conversation
	err := config.DB.
		Preload("Starter").
		Preload("Receiver").
		Where("conversation_id = ?", conversationID).
		First(&conversation).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return nil, false
	}

	if !conversation.HasParty(userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not part of this conversation"})
		return nil, false
	}

	if conversation.DeletedBy(userID) {
		if deletedStatus == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		} else {
			c.JSON(deletedStatus, gin.H{"error": "Conversation has been deleted"})
		}
		return nil, false
	}
	return &conversation, true
}

// 获取单个会话及全部消息
func GetConversationByID(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	conversation, ok := loadConversation(c, userInfo.ID, http.StatusNotFound)
	if !ok {
		return
	}

	var messages []models.Message
	err := config.DB.
		Where("conversation_id = ?", conversation.ConversationID).
		Order("sent_at ASC").
		Find(&messages).Error
	if err != nil {
		log.Println("Error fetching messages:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	var otherUser models.User
	if conversation.StarterID == userInfo.ID {
		otherUser = conversation.Receiver
	} else {
		otherUser = conversation.Starter
	}

	views := make([]MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, MessageView{
			MessageID:  m.ID,
			Content:    m.Content,
			Type:       m.Type,
			SentAt:     m.SentAt,
			IsRead:     m.IsRead,
			IsSentByMe: m.SenderID == userInfo.ID,
		})
	}

	utils.RespondSuccess(c, gin.H{
		"conversation_id":   conversation.ConversationID,
		"other_participant": otherUser.Public(),
		"messages":          views,
	}, nil)
}

// 在会话里发送消息
func SendMessage(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	var input struct {
		Content string `json:"content" binding:"required"`
		Type    string `json:"type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Type == "" {
		input.Type = "text"
	}
	if input.Type != "text" && input.Type != "image" && input.Type != "file" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message type must be text, image or file"})
		return
	}

	// 自己已删除的会话不能再发消息
	conversation, ok := loadConversation(c, userInfo.ID, http.StatusBadRequest)
	if !ok {
		return
	}

	message := models.Message{
		ConversationID: conversation.ConversationID,
		SenderID:       userInfo.ID,
		ReceiverID:     conversation.OtherParty(userInfo.ID),
		Content:        input.Content,
		Type:           input.Type,
		SentAt:         time.Now().UTC(),
		IsRead:         false,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	utils.RespondSuccess(c, MessageView{
		MessageID:  message.ID,
		Content:    message.Content,
		Type:       message.Type,
		SentAt:     message.SentAt,
		IsRead:     message.IsRead,
		IsSentByMe: true,
	}, nil)
}

// 删除会话：先打软删除标记，双方都删过之后
// 在同一事务里连消息一起物理删除
func DeleteConversation(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	conversation, ok := loadConversation(c, userInfo.ID, http.StatusBadRequest)
	if !ok {
		return
	}

	column := "is_deleted_by_receiver"
	otherDeleted := conversation.IsDeletedByStarter
	if conversation.StarterID == userInfo.ID {
		column = "is_deleted_by_starter"
		otherDeleted = conversation.IsDeletedByReceiver
	}

	status := http.StatusOK
	message := ""
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// 带条件的更新，避免双方并发删除时丢失标记
		res := tx.Model(&models.Conversation{}).
			Where("conversation_id = ? AND "+column+" = ?", conversation.ConversationID, false).
			Update(column, true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			status = http.StatusBadRequest
			message = "Conversation already deleted by you"
			return gorm.ErrRecordNotFound
		}

		if !otherDeleted {
			// 对方可能在本次请求之间也删除了，重新读一次
			var current models.Conversation
			if err := tx.Where("conversation_id = ?", conversation.ConversationID).
				First(&current).Error; err != nil {
				return err
			}
			otherDeleted = current.IsDeletedByStarter && current.IsDeletedByReceiver
		}

		if otherDeleted {
			if err := tx.Where("conversation_id = ?", conversation.ConversationID).
				Delete(&models.Message{}).Error; err != nil {
				return err
			}
			if err := tx.Where("conversation_id = ?", conversation.ConversationID).
				Delete(&models.Conversation{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if message == "" {
			status = http.StatusInternalServerError
			message = "Failed to delete conversation"
		}
		c.JSON(status, gin.H{"error": message})
		return
	}

	utils.RespondMessage(c, "Conversation deleted")
}
