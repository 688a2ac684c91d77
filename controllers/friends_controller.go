package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sportmate/config"
	"sportmate/models"
	"sportmate/services"
	"sportmate/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FriendView struct {
	FriendID uint                 `json:"friend_id"`
	Friend   models.PublicProfile `json:"friend"`
}

// acceptedFriendships 查出与用户相关的所有已接受的好友边
func acceptedFriendships(userID uint) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := config.DB.
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, models.FriendshipAccepted).
		Order("created_at ASC").
		Find(&friendships).Error
	return friendships, err
}

// resolveFriendProfiles 把好友边解析成对方的公开信息
func resolveFriendProfiles(userID uint, friendships []models.Friendship) ([]FriendView, error) {
	friendIDs := make([]uint, 0, len(friendships))
	for _, f := range friendships {
		if f.UserID == userID {
			friendIDs = append(friendIDs, f.FriendID)
		} else {
			friendIDs = append(friendIDs, f.UserID)
		}
	}

	users := make(map[uint]models.User, len(friendIDs))
	if len(friendIDs) > 0 {
		var rows []models.User
		if err := config.DB.Where("id IN ?", friendIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, u := range rows {
			users[u.ID] = u
		}
	}

	views := make([]FriendView, 0, len(friendIDs))
	for _, id := range friendIDs {
		u, found := users[id]
		if !found {
			continue
		}
		views = append(views, FriendView{FriendID: u.ID, Friend: u.Public()})
	}
	return views, nil
}

// 获取好友列表
func GetFriends(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	friendships, err := acceptedFriendships(userInfo.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}

	friends, err := resolveFriendProfiles(userInfo.ID, friendships)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}
	utils.RespondSuccess(c, friends, nil)
}

// 按关键字搜索好友（用户名或邮箱，忽略大小写）
func SearchFriends(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search keyword must not be empty"})
		return
	}

	friendships, err := acceptedFriendships(userInfo.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search friends"})
		return
	}
	friends, err := resolveFriendProfiles(userInfo.ID, friendships)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search friends"})
		return
	}

	lowered := strings.ToLower(keyword)
	matched := make([]FriendView, 0)
	for _, f := range friends {
		if strings.Contains(strings.ToLower(f.Friend.UserName), lowered) ||
			strings.Contains(strings.ToLower(f.Friend.Email), lowered) {
			matched = append(matched, f)
		}
	}
	utils.RespondSuccess(c, matched, nil)
}

// 发送好友请求
func SendFriendRequest(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	var input struct {
		TargetUserID uint `json:"target_user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.TargetUserID == userInfo.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send a friend request to yourself"})
		return
	}

	var target models.User
	if err := config.DB.First(&target, input.TargetUserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// 任何方向、任何状态的已有边都会阻止重复请求
	var existing models.Friendship
	err := config.DB.
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userInfo.ID, input.TargetUserID, input.TargetUserID, userInfo.ID).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A friend request already exists between these users"})
		return
	}

	friendship := models.Friendship{
		UserID:   userInfo.ID,
		FriendID: input.TargetUserID,
		Status:   models.FriendshipPending,
	}
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&friendship).Error; err != nil {
			return err
		}
		content := fmt.Sprintf("%s sent you a friend request.", userInfo.UserName)
		return services.CreateNotification(tx, input.TargetUserID, userInfo.ID,
			models.NotificationFriendRequest, content)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send friend request"})
		return
	}

	utils.RespondSuccess(c, gin.H{"request_id": friendship.ID}, nil)
}

// 响应好友请求（接受/拒绝）。只有接收方可以操作，
// 处理成功后原始的 FriendRequest 通知被消费掉。
func RespondToFriendRequest(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	requestID, err := strconv.ParseUint(c.Param("request_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
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
		var friendship models.Friendship
		if err := tx.Where("id = ? AND friend_id = ? AND status = ?",
			uint(requestID), userInfo.ID, models.FriendshipPending).
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

		// 带状态条件的更新，保证并发下只消费一次
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

		if err := services.CreateNotification(tx, friendship.UserID, userInfo.ID, outcome, content); err != nil {
			return err
		}

		// 删除发起方留下的 FriendRequest 通知
		return tx.Where("user_id = ? AND sender_id = ? AND type = ?",
			userInfo.ID, friendship.UserID, models.NotificationFriendRequest).
			Delete(&models.Notification{}).Error
	})
	if err != nil {
		if message == "" {
			status = http.StatusInternalServerError
			message = "Failed to respond to friend request"
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
