package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/formulir/dto"
	model "sekolahku_backend/internals/features/formulir/model"
	helper "sekolahku_backend/internals/helpers"
)

type FormulirController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFormulirController(db *gorm.DB) *FormulirController {
	return &FormulirController{DB: db, Validator: validator.New()}
}

// POST /formulir — form + field sekaligus dalam satu transaksi
func (h *FormulirController) Create(c *fiber.Ctx) error {
	var req dto.CreateFormulirRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	form := model.Formulir{
		FormNama:     req.FormNama,
		FormProdukID: req.FormProdukID,
	}
	err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&form).Error; err != nil {
			return err
		}
		for _, f := range req.Fields {
			tipe := f.FieldTipe
			if tipe == "" {
				tipe = "text"
			}
			field := model.FormField{
				FieldFormID: form.FormID,
				FieldNama:   f.FieldNama,
				FieldLabel:  f.FieldLabel,
				FieldTipe:   tipe,
				FieldWajib:  f.FieldWajib,
			}
			if err := tx.Create(&field).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	// reload beserta fields
	if err := h.DB.WithContext(c.Context()).Preload("Fields").First(&form, "form_id = ?", form.FormID).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Formulir berhasil dibuat", form)
}

// GET /formulir
func (h *FormulirController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.Context()).Model(&model.Formulir{})
	if v := c.Query("produk_id"); v != "" {
		q = q.Where("form_produk_id = ?", v)
	}

	var total int64
	q.Count(&total)

	var list []model.Formulir
	if err := q.Preload("Fields").
		Order("form_id asc").Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Daftar formulir", fiber.Map{
		"formulir":   list,
		"pagination": helper.BuildPagination(paging, total, len(list)),
	})
}

// GET /formulir/:id
func (h *FormulirController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var form model.Formulir
	if err := h.DB.WithContext(c.Context()).Preload("Fields").
		First(&form, "form_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Formulir tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Detail formulir", form)
}

// PATCH /formulir/:id
func (h *FormulirController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var form model.Formulir
	if err := h.DB.WithContext(c.Context()).First(&form, "form_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Formulir tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	var req dto.UpdateFormulirRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.FormNama != nil {
		form.FormNama = *req.FormNama
	}
	if req.FormProdukID != nil {
		form.FormProdukID = req.FormProdukID
	}
	if err := h.DB.WithContext(c.Context()).Save(&form).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Formulir berhasil diupdate", form)
}

// DELETE /formulir/:id — field ikut terhapus
func (h *FormulirController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	err = h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.FormField{}, "field_form_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Formulir{}, "form_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Formulir tidak ditemukan")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Formulir berhasil dihapus", nil)
}
