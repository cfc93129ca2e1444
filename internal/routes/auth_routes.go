package routes

import (
	"dingtalk-leave-backend/internal/handler"
	"dingtalk-leave-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(repo)

	app.Post("/api/register", hdl.Register)
	app.Post("/api/login", hdl.Login)
}
