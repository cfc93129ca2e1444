package main

import (
	"fmt"

	"dingtalk-leave-backend/config"
	"dingtalk-leave-backend/internal/dingtalk"
	"dingtalk-leave-backend/internal/routes"
	"dingtalk-leave-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	// Satu client DingTalk untuk seluruh aplikasi (cache token tunggal)
	client := dingtalk.NewClient(
		config.GetEnv("DINGTALK_BASE_URL", "https://oapi.dingtalk.com"),
		config.GetEnv("DINGTALK_APP_KEY", ""),
		config.GetEnv("DINGTALK_APP_SECRET", ""),
	)

	syncService := service.NewSyncService(config.DB, client, service.SyncConfig{
		RootDeptID:     config.RootDeptID(),
		AdminUserID:    config.AdminUserID(),
		LeaveTypeNames: config.LeaveTypeNames(),
	})

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal (Debugging)

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupSyncRoutes(app, syncService)
	routes.SetupLeaveRoutes(app, config.DB)
	routes.SetupHariLiburRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
