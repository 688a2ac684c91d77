package main

import (
	"log"

	"sportmate/config"
	"sportmate/models"
	"sportmate/routes"

	"github.com/joho/godotenv"
)

func main() {
	// 加载 .env（不存在时忽略）
	_ = godotenv.Load()

	// 初始化数据库
	config.InitDB()
	// 自动迁移
	models.Migrate()
	// 注册路由
	r := routes.RegisterRoutes()

	// 启动服务
	if err := r.Run(config.ServerAddr()); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
