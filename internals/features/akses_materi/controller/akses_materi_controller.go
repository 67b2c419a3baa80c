package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/akses_materi/dto"
	"sekolahku_backend/internals/features/akses_materi/model"
	"sekolahku_backend/internals/features/akses_materi/service"
	helper "sekolahku_backend/internals/helpers"
)

type AksesMateriController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAksesMateriController(db *gorm.DB) *AksesMateriController {
	return &AksesMateriController{DB: db, Validator: validator.New()}
}

// POST /akses-materi/grant
func (h *AksesMateriController) Grant(c *fiber.Ctx) error {
	var req dto.GrantAksesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	akses, err := service.GrantAkses(h.DB.WithContext(c.Context()), req.IDSiswa, req.IDProduk, req.IDOrder)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Akses materi berhasil dibuka", akses)
}

// GET /akses-materi — filter per siswa / produk
func (h *AksesMateriController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.Context()).Model(&model.AksesMateri{})
	if v := c.Query("siswa_id"); v != "" {
		q = q.Where("akses_materi_siswa_id = ?", v)
	}
	if v := c.Query("produk_id"); v != "" {
		q = q.Where("akses_materi_produk_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("akses_materi_status = ?", v)
	}

	var total int64
	q.Count(&total)

	var list []model.AksesMateri
	if err := q.Preload("Siswa").Preload("Produk").
		Order("akses_materi_id asc").Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Daftar akses materi", fiber.Map{
		"akses_materi": list,
		"pagination":   helper.BuildPagination(paging, total, len(list)),
	})
}

// PATCH /akses-materi/:id/revoke
func (h *AksesMateriController) Revoke(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	akses, err := service.RevokeAkses(h.DB.WithContext(c.Context()), uint(id))
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Akses materi berhasil dikunci", akses)
}

// DELETE /akses-materi/:id
func (h *AksesMateriController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := service.DeleteAkses(h.DB.WithContext(c.Context()), uint(id)); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Akses materi berhasil dihapus", nil)
}
