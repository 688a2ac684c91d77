package controllers

import (
	"net/http"

	"sportmate/models"

	"github.com/gin-gonic/gin"
)

// currentUser 从上下文取出认证中间件放入的用户。
// 取不到时直接写 401 响应，调用方只需 return。
func currentUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User identity missing"})
		return nil, false
	}
	userInfo, ok := user.(*models.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user data"})
		return nil, false
	}
	return userInfo, true
}
