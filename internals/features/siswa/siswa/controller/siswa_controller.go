package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/siswa/siswa/dto"
	model "sekolahku_backend/internals/features/siswa/siswa/model"
	helper "sekolahku_backend/internals/helpers"
)

type SiswaController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSiswaController(db *gorm.DB) *SiswaController {
	return &SiswaController{DB: db, Validator: validator.New()}
}

// POST /siswa
func (h *SiswaController) Create(c *fiber.Ctx) error {
	var req dto.CreateSiswaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.Siswa{
		SiswaUserID:  req.SiswaUserID,
		SiswaNama:    req.SiswaNama,
		SiswaEmail:   req.SiswaEmail,
		SiswaTelepon: req.SiswaTelepon,
		SiswaAlamat:  req.SiswaAlamat,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa berhasil dibuat", m)
}

// GET /siswa
func (h *SiswaController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.Context()).Model(&model.Siswa{})
	if v := c.Query("search"); v != "" {
		q = q.Where("siswa_nama LIKE ?", "%"+v+"%")
	}

	var total int64
	q.Count(&total)

	var list []model.Siswa
	if err := q.Order("siswa_id asc").Offset(paging.Offset).Limit(paging.Limit).Find(&list).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Daftar siswa", fiber.Map{
		"siswa":      list,
		"pagination": helper.BuildPagination(paging, total, len(list)),
	})
}

// GET /siswa/:id
func (h *SiswaController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.Siswa
	if err := h.DB.WithContext(c.Context()).First(&m, "siswa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Detail siswa", m)
}

// PATCH /siswa/:id
func (h *SiswaController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.Siswa
	if err := h.DB.WithContext(c.Context()).First(&m, "siswa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	var req dto.UpdateSiswaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.SiswaUserID != nil {
		m.SiswaUserID = req.SiswaUserID
	}
	if req.SiswaNama != nil {
		m.SiswaNama = *req.SiswaNama
	}
	if req.SiswaEmail != nil {
		m.SiswaEmail = req.SiswaEmail
	}
	if req.SiswaTelepon != nil {
		m.SiswaTelepon = req.SiswaTelepon
	}
	if req.SiswaAlamat != nil {
		m.SiswaAlamat = req.SiswaAlamat
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Siswa berhasil diupdate", m)
}

// DELETE /siswa/:id
func (h *SiswaController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := h.DB.WithContext(c.Context()).Delete(&model.Siswa{}, "siswa_id = ?", id)
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.Success(c, "Siswa berhasil dihapus", nil)
}
