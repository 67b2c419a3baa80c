package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/analytics/dto"
	"sekolahku_backend/internals/features/analytics/model"
	helper "sekolahku_backend/internals/helpers"
)

type AnalyticsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db, Validator: validator.New()}
}

// POST /analytics/klik-tombol — user id diisi kalau request terautentikasi
func (h *AnalyticsController) Record(c *fiber.Ctx) error {
	var req dto.RecordKlikRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	klik := model.KlikTombol{
		KlikNama:    req.NamaTombol,
		KlikHalaman: req.Halaman,
	}
	if userID, ok := c.Locals("user_id").(uint); ok {
		klik.KlikUserID = &userID
	}
	if req.Metadata != nil {
		klik.KlikMetadata = datatypes.JSONMap(req.Metadata)
	}

	if err := h.DB.WithContext(c.Context()).Create(&klik).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Klik tercatat", klik)
}

// GET /analytics/klik-tombol/stats — agregat jumlah klik per tombol
func (h *AnalyticsController) Stats(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.Context()).Model(&model.KlikTombol{})
	if v := c.Query("halaman"); v != "" {
		q = q.Where("klik_halaman = ?", v)
	}

	var stats []dto.KlikStatItem
	if err := q.
		Select("klik_nama_tombol AS nama_tombol, COUNT(*) AS total").
		Group("klik_nama_tombol").
		Order("total desc").
		Scan(&stats).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Statistik klik tombol", fiber.Map{"stats": stats})
}
