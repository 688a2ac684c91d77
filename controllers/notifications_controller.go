package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sportmate/config"
	"sportmate/models"
	"sportmate/services"
	"sportmate/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationView struct {
	NotificationID uint                 `json:"notification_id"`
	Type           string               `json:"type"`
	Content        string               `json:"content"`
	IsRead         bool                 `json:"is_read"`
	CreatedAt      time.Time            `json:"created_at"`
	Sender         models.PublicProfile `json:"sender"`
}

func notificationView(n models.Notification, sender models.User) NotificationView {
	return NotificationView{
		NotificationID: n.ID,
		Type:           n.Type,
		Content:        n.Content,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
		Sender:         sender.Public(),
	}
}

// 获取通知列表（新的在前）
func GetNotifications(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	var notifications []models.Notification
	err := config.DB.
		Where("user_id = ?", userInfo.ID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	// 一次性查出所有发送者
	senderIDs := make([]uint, 0, len(notifications))
	for _, n := range notifications {
		senderIDs = append(senderIDs, n.SenderID)
	}
	senders := make(map[uint]models.User, len(senderIDs))
	if len(senderIDs) > 0 {
		var rows []models.User
		if err := config.DB.Where("id IN ?", senderIDs).Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}
		for _, u := range rows {
			senders[u.ID] = u
		}
	}

	views := make([]NotificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, notificationView(n, senders[n.SenderID]))
	}
	utils.RespondSuccess(c, views, nil)
}

// 查看通知详情
func GetNotificationDetails(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	notificationID, err := strconv.ParseUint(c.Param("notification_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	var notification models.Notification
	err = config.DB.
		Where("id = ? AND user_id = ?", uint(notificationID), userInfo.ID).
		First(&notification).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	var sender models.User
	config.DB.First(&sender, notification.SenderID)
	utils.RespondSuccess(c, notificationView(notification, sender), nil)
}

// 响应好友请求通知（accept/reject）。
// 需要通知本身和对应的 pending 好友边同时存在，
// 成功后两者都被消费，重复调用返回 404。
func RespondToNotification(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	notificationID, err := strconv.ParseUint(c.Param("notification_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	var input struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Action != "accept" && input.Action != "reject" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action must be accept or reject"})
		return
	}

	status := http.StatusOK
	message := ""
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var notification models.Notification
		if err := tx.Where("id = ? AND user_id = ?", uint(notificationID), userInfo.ID).
			First(&notification).Error; err != nil {
			status = http.StatusNotFound
			message = "Notification not found"
			return err
		}

		if notification.Type != models.NotificationFriendRequest {
			status = http.StatusBadRequest
			message = "Notification is not a friend request"
			return gorm.ErrInvalidData
		}

		// 对应的 pending 好友边也必须存在
		var friendship models.Friendship
		if err := tx.Where("user_id = ? AND friend_id = ? AND status = ?",
			notification.SenderID, userInfo.ID, models.FriendshipPending).
			First(&friendship).Error; err != nil {
			status = http.StatusNotFound
			message = "Friend request not found"
			return err
		}

		newStatus := models.FriendshipAccepted
		outcome := models.NotificationFriendRequestAccepted
		content := fmt.Sprintf("%s accepted your friend request.", userInfo.UserName)
		if input.Action == "reject" {
			newStatus = models.FriendshipRejected
			outcome = models.NotificationFriendRequestRejected
			content = fmt.Sprintf("%s rejected your friend request.", userInfo.UserName)
		}

		res := tx.Model(&models.Friendship{}).
			Where("id = ? AND status = ?", friendship.ID, models.FriendshipPending).
			Update("status", newStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			status = http.StatusNotFound
			message = "Friend request not found"
			return gorm.ErrRecordNotFound
		}

		if err := services.CreateNotification(tx, notification.SenderID, userInfo.ID, outcome, content); err != nil {
			return err
		}

		// 消费掉这条好友请求通知
		return tx.Delete(&notification).Error
	})
	if err != nil {
		if message == "" {
			status = http.StatusInternalServerError
			message = "Failed to respond to notification"
		}
		c.JSON(status, gin.H{"error": message})
		return
	}

	if input.Action == "accept" {
		utils.RespondMessage(c, "Friend request accepted")
	} else {
		utils.RespondMessage(c, "Friend request rejected")
	}
}

// 删除单条通知
func DeleteNotification(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	notificationID, err := strconv.ParseUint(c.Param("notification_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	res := config.DB.
		Where("id = ? AND user_id = ?", uint(notificationID), userInfo.ID).
		Delete(&models.Notification{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	utils.RespondMessage(c, "Notification deleted")
}

// 删除当前用户的所有通知
func DeleteAllNotifications(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	res := config.DB.Where("user_id = ?", userInfo.ID).Delete(&models.Notification{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notifications"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No notifications to delete"})
		return
	}

	utils.RespondMessage(c, "All notifications deleted")
}

// 全部标记为已读
func MarkAllNotificationsRead(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	res := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userInfo.ID, false).
		Update("is_read", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No unread notifications"})
		return
	}

	utils.RespondMessage(c, "All notifications marked as read")
}
