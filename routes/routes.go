package routes

import (
	"sportmate/controllers"
	"sportmate/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes() *gin.Engine {

	r := gin.Default()
	// 配置跨域中间件
	corsConfig := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")

	api.POST("/register", controllers.Register)
	api.POST("/login", controllers.Login)

	{
		api.Use(middlewares.TokenAuthMiddleware())
		api.GET("/userinfo", controllers.GetUserInfo)
		api.PUT("/userinfo", controllers.UpdateProfile)

		// 好友
		api.GET("/friends", controllers.GetFriends)
		api.GET("/friends/search", controllers.SearchFriends)
		api.POST("/friends/requests", controllers.SendFriendRequest)
		api.POST("/friends/requests/:request_id/respond", controllers.RespondToFriendRequest)

		// 会话与消息
		api.GET("/friends/conversations", controllers.GetConversations)
		api.POST("/friends/conversations", controllers.CreateConversationHandler)
		api.GET("/friends/conversations/:conversation_id", controllers.GetConversationByID)
		api.POST("/friends/conversations/:conversation_id/messages", controllers.SendMessage)
		api.DELETE("/friends/conversations/:conversation_id", controllers.DeleteConversation)

		// 通知
		api.GET("/notifications", controllers.GetNotifications)
		api.PUT("/notifications/mark-all-read", controllers.MarkAllNotificationsRead)
		api.DELETE("/notifications/delete-all", controllers.DeleteAllNotifications)
		api.GET("/notifications/:notification_id", controllers.GetNotificationDetails)
		api.POST("/notifications/:notification_id/respond", controllers.RespondToNotification)
		api.DELETE("/notifications/:notification_id", controllers.DeleteNotification)

		// 玩家
		api.POST("/players/register", controllers.RegisterSport)
		api.GET("/players/details/:user_id", controllers.GetPlayerDetails)
		api.GET("/players/:sport", controllers.GetPlayersBySport)
	}

	return r
}
