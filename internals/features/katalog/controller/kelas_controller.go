package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/katalog/dto"
	model "sekolahku_backend/internals/features/katalog/model"
	helper "sekolahku_backend/internals/helpers"
)

type KelasController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewKelasController(db *gorm.DB) *KelasController {
	return &KelasController{DB: db, Validator: validator.New()}
}

// POST /kelas
func (h *KelasController) Create(c *fiber.Ctx) error {
	var req dto.CreateKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.Kelas{
		KelasKategoriID:       req.KelasKategoriID,
		KelasNama:             req.KelasNama,
		KelasDeskripsi:        req.KelasDeskripsi,
		KelasBiayaDaftarUlang: req.KelasBiayaDaftarUlang,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kelas berhasil dibuat", m)
}

// GET /kelas
func (h *KelasController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.Context()).Model(&model.Kelas{})
	if v := c.Query("kategori_id"); v != "" {
		q = q.Where("kelas_kategori_id = ?", v)
	}

	var total int64
	q.Count(&total)

	var list []model.Kelas
	if err := q.Preload("Kategori").
		Order("kelas_id asc").Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Daftar kelas", fiber.Map{
		"kelas":      list,
		"pagination": helper.BuildPagination(paging, total, len(list)),
	})
}

// GET /kelas/:id
func (h *KelasController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.Kelas
	if err := h.DB.WithContext(c.Context()).Preload("Kategori").
		First(&m, "kelas_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Detail kelas", m)
}

// PATCH /kelas/:id
func (h *KelasController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.Kelas
	if err := h.DB.WithContext(c.Context()).First(&m, "kelas_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	var req dto.UpdateKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.KelasKategoriID != nil {
		m.KelasKategoriID = req.KelasKategoriID
	}
	if req.KelasNama != nil {
		m.KelasNama = *req.KelasNama
	}
	if req.KelasDeskripsi != nil {
		m.KelasDeskripsi = req.KelasDeskripsi
	}
	if req.KelasBiayaDaftarUlang != nil {
		m.KelasBiayaDaftarUlang = req.KelasBiayaDaftarUlang
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Kelas berhasil diupdate", m)
}

// DELETE /kelas/:id
func (h *KelasController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := h.DB.WithContext(c.Context()).Delete(&model.Kelas{}, "kelas_id = ?", id)
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.Success(c, "Kelas berhasil dihapus", nil)
}
