package handler

import (
	"errors"
	"strconv"
	"time"

	"dingtalk-leave-backend/config"
	"dingtalk-leave-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SyncHandler struct {
	svc *service.SyncService
}

func NewSyncHandler(svc *service.SyncService) *SyncHandler {
	return &SyncHandler{svc: svc}
}

type syncTriggerRequest struct {
	Year int `json:"year"`
}

// TriggerFull menjalankan full sync di background.
// Non-blocking: kalau masih ada run yang jalan, langsung ditolak.
func (h *SyncHandler) TriggerFull(c *fiber.Ctx) error {
	var req syncTriggerRequest
	_ = c.BodyParser(&req) // Body kosong = tahun berjalan

	if err := h.svc.StartFullSync(req.Year); err != nil {
		if errors.Is(err, service.ErrSyncRunning) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Sinkronisasi masih berjalan, tunggu sampai selesai",
				"success": false,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memulai sinkronisasi"})
	}

	return c.JSON(fiber.Map{
		"message": "Sinkronisasi dimulai di background",
		"success": true,
	})
}

// Status mengembalikan entry sync log terakhir (default 20, bisa
// diubah lewat SYNC_LOG_LIMIT).
func (h *SyncHandler) Status(c *fiber.Ctx) error {
	logs, err := h.svc.RecentLogs(config.GetEnvAsInt("SYNC_LOG_LIMIT", 20))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil status sinkronisasi"})
	}
	return c.JSON(fiber.Map{"data": logs})
}

func (h *SyncHandler) SyncDepartments(c *fiber.Ctx) error {
	msg, err := h.svc.SyncDepartments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": msg})
}

func (h *SyncHandler) SyncEmployees(c *fiber.Ctx) error {
	var deptID *int64
	if raw := c.Query("dept_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dept_id tidak valid"})
		}
		deptID = &id
	}

	msg, err := h.svc.SyncEmployees(deptID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": msg})
}

func (h *SyncHandler) SyncLeaveTypes(c *fiber.Ctx) error {
	msg, err := h.svc.SyncLeaveTypes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": msg})
}

func (h *SyncHandler) SyncLeaveRecords(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())

	msg, err := h.svc.SyncLeaveRecords(year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": msg})
}
