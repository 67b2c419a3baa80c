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

type ProdukController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProdukController(db *gorm.DB) *ProdukController {
	return &ProdukController{DB: db, Validator: validator.New()}
}

// POST /produk
func (h *ProdukController) Create(c *fiber.Ctx) error {
	var req dto.CreateProdukRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.Produk{
		ProdukKategoriID: req.ProdukKategoriID,
		ProdukKelasID:    req.ProdukKelasID,
		ProdukNama:       req.ProdukNama,
		ProdukDeskripsi:  req.ProdukDeskripsi,
		ProdukHarga:      req.ProdukHarga,
		ProdukTipe:       req.ProdukTipe,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Produk berhasil dibuat", m)
}

// GET /produk — filter ?tipe= & ?kelas_id= & ?kategori_id=
func (h *ProdukController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.Context()).Model(&model.Produk{})
	if v := c.Query("tipe"); v != "" {
		q = q.Where("produk_tipe = ?", v)
	}
	if v := c.Query("kelas_id"); v != "" {
		q = q.Where("produk_kelas_id = ?", v)
	}
	if v := c.Query("kategori_id"); v != "" {
		q = q.Where("produk_kategori_id = ?", v)
	}

	var total int64
	q.Count(&total)

	var list []model.Produk
	if err := q.Preload("Kategori").Preload("Kelas").
		Order("produk_id asc").Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Daftar produk", fiber.Map{
		"produk":     list,
		"pagination": helper.BuildPagination(paging, total, len(list)),
	})
}

// GET /produk/:id
func (h *ProdukController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.Produk
	if err := h.DB.WithContext(c.Context()).Preload("Kategori").Preload("Kelas").
		First(&m, "produk_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Detail produk", m)
}

// PATCH /produk/:id
func (h *ProdukController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.Produk
	if err := h.DB.WithContext(c.Context()).First(&m, "produk_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	var req dto.UpdateProdukRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.ProdukKategoriID != nil {
		m.ProdukKategoriID = req.ProdukKategoriID
	}
	if req.ProdukKelasID != nil {
		m.ProdukKelasID = req.ProdukKelasID
	}
	if req.ProdukNama != nil {
		m.ProdukNama = *req.ProdukNama
	}
	if req.ProdukDeskripsi != nil {
		m.ProdukDeskripsi = req.ProdukDeskripsi
	}
	if req.ProdukHarga != nil {
		m.ProdukHarga = *req.ProdukHarga
	}
	if req.ProdukTipe != nil {
		m.ProdukTipe = *req.ProdukTipe
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Produk berhasil diupdate", m)
}

// DELETE /produk/:id
func (h *ProdukController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := h.DB.WithContext(c.Context()).Delete(&model.Produk{}, "produk_id = ?", id)
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}
	return helper.Success(c, "Produk berhasil dihapus", nil)
}
