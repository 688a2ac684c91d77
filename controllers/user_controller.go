package controllers

import (
	"net/http"
	"time"

	"sportmate/config"
	"sportmate/models"
	"sportmate/services"
	"sportmate/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UserInfoResponse struct {
	ID       uint   `json:"id"`
	UserName string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Avatar   string `json:"avatar"`
	Location string `json:"location"`
}

// 用户注册
func Register(c *gin.Context) {
	var userInput struct {
		UserName string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&userInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 检查邮箱是否已存在
	var existingUser models.User
	if err := config.DB.Where("email = ?", userInput.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userInput.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	newUser := models.User{
		UserName:     userInput.UserName,
		Email:        userInput.Email,
		PasswordHash: string(hashedPassword),
		Role:         "User",
		LastActive:   time.Now().UTC(),
	}

	if err := config.DB.Create(&newUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := services.GenerateToken(newUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	utils.RespondSuccess(c, gin.H{"token": token, "user_id": newUser.ID}, nil)
}

// 用户登录
func Login(c *gin.Context) {
	var loginInput struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&loginInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", loginInput.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(loginInput.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// 更新活跃时间
	user.LastActive = time.Now().UTC()
	user.IsOnline = true
	config.DB.Save(&user)

	token, err := services.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token, "user_id": user.ID}, nil)
}

func GetUserInfo(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}
	data := UserInfoResponse{
		ID:       userInfo.ID,
		UserName: userInfo.UserName,
		Email:    userInfo.Email,
		Role:     userInfo.Role,
		Age:      userInfo.Age,
		Gender:   userInfo.Gender,
		Avatar:   userInfo.Avatar,
		Location: userInfo.Location,
	}
	utils.RespondSuccess(c, data, nil)
}

// 更新个人资料
func UpdateProfile(c *gin.Context) {
	userInfo, ok := currentUser(c)
	if !ok {
		return
	}

	var input struct {
		UserName string `json:"username"`
		Age      int    `json:"age"`
		Gender   string `json:"gender"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.UserName != "" {
		userInfo.UserName = input.UserName
	}
	if input.Age > 0 {
		userInfo.Age = input.Age
	}
	if input.Gender != "" {
		userInfo.Gender = input.Gender
	}
	if input.Location != "" {
		userInfo.Location = input.Location
	}

	if err := config.DB.Save(userInfo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	utils.RespondSuccess(c, UserInfoResponse{
		ID:       userInfo.ID,
		UserName: userInfo.UserName,
		Email:    userInfo.Email,
		Role:     userInfo.Role,
		Age:      userInfo.Age,
		Gender:   userInfo.Gender,
		Avatar:   userInfo.Avatar,
		Location: userInfo.Location,
	}, nil)
}
