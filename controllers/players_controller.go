package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"sportmate/config"
	"sportmate/models"
	"sportmate/utils"

	"github.com/gin-gonic/gin"
)

// 注册运动项目
func RegisterSport(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	var input struct {
		Sport      string `json:"sport" binding:"required"`
		SkillLevel string `json:"skill_level"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sport := strings.TrimSpace(input.Sport)
	if sport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sport must not be empty"})
		return
	}

	// 同一项目不能重复注册
	var existing models.PlayerSport
	err := config.DB.
		Where("user_id = ? AND LOWER(sport) = ?", userInfo.ID, strings.ToLower(sport)).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sport already registered for this user"})
		return
	}

	playerSport := models.PlayerSport{
		UserID:     userInfo.ID,
		Sport:      sport,
		SkillLevel: input.SkillLevel,
	}
	if err := config.DB.Create(&playerSport).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register sport"})
		return
	}

	utils.RespondMessage(c, "Sport registered")
}

// 按运动项目查找玩家
func GetPlayersBySport(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	sport := strings.TrimSpace(c.Param("sport"))
	if sport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sport must not be empty"})
		return
	}

	var registrations []models.PlayerSport
	err := config.DB.
		Where("LOWER(sport) = ?", strings.ToLower(sport)).
		Find(&registrations).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
		return
	}
	if len(registrations) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No players registered for this sport"})
		return
	}

	userIDs := make([]uint, 0, len(registrations))
	for _, r := range registrations {
		userIDs = append(userIDs, r.UserID)
	}

	var users []models.User
	if err := config.DB.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
		return
	}

	players := make([]gin.H, 0, len(users))
	for _, u := range users {
		players = append(players, gin.H{
			"user_id":  u.ID,
			"username": u.UserName,
			"avatar":   u.Avatar,
			"age":      u.Age,
			"gender":   u.Gender,
			"location": u.Location,
		})
	}
	utils.RespondSuccess(c, players, nil)
}

// 玩家详情
func GetPlayerDetails(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uint(userID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	var sports []string
	config.DB.Model(&models.PlayerSport{}).
		Where("user_id = ?", user.ID).
		Pluck("sport", &sports)

	utils.RespondSuccess(c, gin.H{
		"user_id":  user.ID,
		"username": user.UserName,
		"avatar":   user.Avatar,
		"age":      user.Age,
		"gender":   user.Gender,
		"location": user.Location,
		"sports":   sports,
	}, nil)
}
