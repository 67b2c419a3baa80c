package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/siswa/siswa_kelas/dto"
	model "sekolahku_backend/internals/features/siswa/siswa_kelas/model"
	service "sekolahku_backend/internals/features/siswa/siswa_kelas/service"
	helper "sekolahku_backend/internals/helpers"
)

type SiswaKelasController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSiswaKelasController(db *gorm.DB) *SiswaKelasController {
	return &SiswaKelasController{DB: db, Validator: validator.New()}
}

// POST /siswa-kelas
func (h *SiswaKelasController) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	enrollment, err := service.EnrollSiswa(h.DB.WithContext(c.Context()), req.SiswaKelasSiswaID, req.SiswaKelasKelasID, req.SiswaKelasOrderID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment berhasil dibuat", enrollment)
}

// POST /siswa-kelas/bulk
func (h *SiswaKelasController) EnrollBulk(c *fiber.Ctx) error {
	var req dto.EnrollBulkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	enrollments, err := service.EnrollBulk(h.DB.WithContext(c.Context()), req.SiswaKelasKelasID, req.SiswaIDs)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment bulk berhasil dibuat", enrollments)
}

// GET /siswa-kelas — filter ?siswa_id= & ?kelas_id= & ?status=
func (h *SiswaKelasController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.Context()).Model(&model.SiswaKelas{})
	if v := c.Query("siswa_id"); v != "" {
		q = q.Where("siswa_kelas_siswa_id = ?", v)
	}
	if v := c.Query("kelas_id"); v != "" {
		q = q.Where("siswa_kelas_kelas_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("siswa_kelas_status = ?", v)
	}

	var total int64
	q.Count(&total)

	var list []model.SiswaKelas
	if err := q.Preload("Siswa").Preload("Kelas").
		Order("siswa_kelas_id asc").Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Daftar enrollment", fiber.Map{
		"siswa_kelas": list,
		"pagination":  helper.BuildPagination(paging, total, len(list)),
	})
}

// PATCH /siswa-kelas/:id
func (h *SiswaKelasController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var enrollment model.SiswaKelas
	if err := h.DB.WithContext(c.Context()).First(&enrollment, "siswa_kelas_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := service.UpdateEnrollmentStatus(h.DB.WithContext(c.Context()), &enrollment,
		req.SiswaKelasStatus, req.SiswaKelasSudahDaftarUlang, req.SiswaKelasOrderID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Enrollment berhasil diupdate", enrollment)
}

// DELETE /siswa-kelas/:id
func (h *SiswaKelasController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := h.DB.WithContext(c.Context()).Delete(&model.SiswaKelas{}, "siswa_kelas_id = ?", id)
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
	}
	return helper.Success(c, "Enrollment berhasil dihapus", nil)
}
