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

type KategoriController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewKategoriController(db *gorm.DB) *KategoriController {
	return &KategoriController{DB: db, Validator: validator.New()}
}

// POST /kategori
func (h *KategoriController) Create(c *fiber.Ctx) error {
	var req dto.CreateKategoriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.Kategori{
		KategoriNama:      req.KategoriNama,
		KategoriDeskripsi: req.KategoriDeskripsi,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kategori berhasil dibuat", m)
}

// GET /kategori
func (h *KategoriController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	var list []model.Kategori
	q := h.DB.WithContext(c.Context()).Model(&model.Kategori{})
	q.Count(&total)
	if err := q.Order("kategori_id asc").Offset(paging.Offset).Limit(paging.Limit).Find(&list).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Daftar kategori", fiber.Map{
		"kategori":   list,
		"pagination": helper.BuildPagination(paging, total, len(list)),
	})
}

// GET /kategori/:id
func (h *KategoriController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.Kategori
	if err := h.DB.WithContext(c.Context()).First(&m, "kategori_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Detail kategori", m)
}

// PATCH /kategori/:id
func (h *KategoriController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.Kategori
	if err := h.DB.WithContext(c.Context()).First(&m, "kategori_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	var req dto.UpdateKategoriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.KategoriNama != nil {
		m.KategoriNama = *req.KategoriNama
	}
	if req.KategoriDeskripsi != nil {
		m.KategoriDeskripsi = req.KategoriDeskripsi
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Kategori berhasil diupdate", m)
}

// DELETE /kategori/:id
func (h *KategoriController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := h.DB.WithContext(c.Context()).Delete(&model.Kategori{}, "kategori_id = ?", id)
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	return helper.Success(c, "Kategori berhasil dihapus", nil)
}
