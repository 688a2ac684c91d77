package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondSuccess 统一成功响应格式
func RespondSuccess(c *gin.Context, data interface{}, message *string) {
	resp := gin.H{
		"code": 200,
		"data": data,
	}
	if message != nil {
		resp["message"] = *message
	}
	c.JSON(http.StatusOK, resp)
}

// RespondMessage 只返回提示信息的成功响应
func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": message,
	})
}
