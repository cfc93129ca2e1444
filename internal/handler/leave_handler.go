package handler

import (
	"time"

	"dingtalk-leave-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LeaveHandler struct {
	svc *service.LeaveService
}

func NewLeaveHandler(svc *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{svc: svc}
}

// MonthlySummary rekap cuti per karyawan per bulan satu tahun.
// Query: year (default tahun berjalan), unit (day/hour).
func (h *LeaveHandler) MonthlySummary(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	unit := c.Query("unit", "day")

	summary, err := h.svc.MonthlySummary(year, unit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil rekap bulanan"})
	}
	return c.JSON(fiber.Map{"data": summary})
}
