package handler

import (
	"strconv"

	"dingtalk-leave-backend/internal/model"
	"dingtalk-leave-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type HariLiburHandler struct {
	repo repository.HariLiburRepository
}

func NewHariLiburHandler(repo repository.HariLiburRepository) *HariLiburHandler {
	return &HariLiburHandler{repo: repo}
}

func (h *HariLiburHandler) GetAll(c *fiber.Ctx) error {
	data, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data"})
	}
	return c.JSON(fiber.Map{"data": data})
}

func (h *HariLiburHandler) Create(c *fiber.Ctx) error {
	var req model.HariLibur
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if req.Jenis != model.HariLiburJenisMasuk {
		req.Jenis = model.HariLiburJenisLibur
	}

	if err := h.repo.Create(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan data"})
	}

	return c.JSON(fiber.Map{"message": "Hari libur berhasil ditambahkan", "data": req})
}

func (h *HariLiburHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.HariLibur
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	libur, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
	}

	libur.Tanggal = req.Tanggal
	libur.Jenis = req.Jenis
	libur.Keterangan = req.Keterangan

	if err := h.repo.Update(libur); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update data"})
	}
	return c.JSON(fiber.Map{"message": "Data berhasil diupdate", "data": libur})
}

func (h *HariLiburHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus data"})
	}
	return c.JSON(fiber.Map{"message": "Data berhasil dihapus"})
}
