package routes

import (
	"dingtalk-leave-backend/internal/handler"
	"dingtalk-leave-backend/internal/middleware"
	"dingtalk-leave-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

func SetupSyncRoutes(app *fiber.App, svc *service.SyncService) {
	hdl := handler.NewSyncHandler(svc)

	api := app.Group("/api/sync", middleware.Auth)

	api.Post("/", hdl.TriggerFull)
	api.Get("/status", hdl.Status)

	// Trigger per tahap (sinkron, untuk admin/debugging)
	api.Post("/departments", hdl.SyncDepartments)
	api.Post("/employees", hdl.SyncEmployees)
	api.Post("/leave-types", hdl.SyncLeaveTypes)
	api.Post("/leave-records", hdl.SyncLeaveRecords)
}
