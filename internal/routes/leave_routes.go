package routes

import (
	"dingtalk-leave-backend/internal/handler"
	"dingtalk-leave-backend/internal/middleware"
	"dingtalk-leave-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB) {
	svc := service.NewLeaveService(db)
	hdl := handler.NewLeaveHandler(svc)

	api := app.Group("/api/leave", middleware.Auth)

	api.Get("/monthly-summary", hdl.MonthlySummary)
}
