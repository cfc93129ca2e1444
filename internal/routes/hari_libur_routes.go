package routes

import (
	"dingtalk-leave-backend/internal/handler"
	"dingtalk-leave-backend/internal/middleware"
	"dingtalk-leave-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupHariLiburRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewHariLiburRepository(db)
	hdl := handler.NewHariLiburHandler(repo)

	api := app.Group("/api/admin/hari-libur", middleware.Auth)

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
