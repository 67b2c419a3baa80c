package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/orders/dto"
	"sekolahku_backend/internals/features/orders/model"
	"sekolahku_backend/internals/features/orders/service"
	helper "sekolahku_backend/internals/helpers"
)

type OrderController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Validator: validator.New()}
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("user_id").(uint)
	return id, ok
}

func isAdminRole(c *fiber.Ctx) bool {
	role, ok := c.Locals("user_role").(constants.Role)
	if !ok {
		return false
	}
	for _, r := range constants.AdminAndAbove {
		if role == r {
			return true
		}
	}
	return false
}

// POST /orders
func (h *OrderController) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	order, err := service.CreateOrder(h.DB.WithContext(c.Context()), &userID, &req)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	// balikan lengkap beserta relasi
	if err := h.DB.WithContext(c.Context()).
		Preload("Produk").Preload("User").Preload("Responses").
		First(order, "order_id = ?", order.OrderID).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Order berhasil dibuat", order)
}

// GET /orders — user biasa hanya melihat order miliknya sendiri
func (h *OrderController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.Context()).Model(&model.Order{})
	if !isAdminRole(c) {
		userID, ok := currentUserID(c)
		if !ok {
			return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
		}
		q = q.Where("order_user_id = ?", userID)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("order_status = ?", v)
	}
	if v := c.Query("status_pembayaran"); v != "" {
		q = q.Where("order_status_pembayaran = ?", v)
	}
	if v := c.Query("produk_id"); v != "" {
		q = q.Where("order_produk_id = ?", v)
	}

	var total int64
	q.Count(&total)

	var list []model.Order
	if err := q.Preload("Produk").
		Order("order_id desc").Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Daftar order", fiber.Map{
		"orders":     list,
		"pagination": helper.BuildPagination(paging, total, len(list)),
	})
}

// GET /orders/:id
func (h *OrderController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var order model.Order
	if err := h.DB.WithContext(c.Context()).
		Preload("Produk").Preload("User").Preload("Responses").
		First(&order, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	if !isAdminRole(c) {
		userID, _ := currentUserID(c)
		if order.OrderUserID == nil || *order.OrderUserID != userID {
			return helper.Error(c, fiber.StatusForbidden, "Anda tidak berhak melihat order ini")
		}
	}
	return helper.Success(c, "Detail order", order)
}

// PATCH /orders/:id — admin saja
func (h *OrderController) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var order model.Order
	if err := h.DB.WithContext(c.Context()).First(&order, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.UpdateOrderStatus(h.DB.WithContext(c.Context()), &order, &req); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Status order berhasil diupdate", order)
}

// POST /orders/:id/cancel — pemilik order (admin boleh semua)
func (h *OrderController) Cancel(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	userID, ok := currentUserID(c)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	order, err := service.CancelOrder(h.DB.WithContext(c.Context()), uint(id), userID, isAdminRole(c))
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Order berhasil dibatalkan", order)
}

// DELETE /orders/:id — admin saja, jawaban formulir ikut terhapus
func (h *OrderController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := service.DeleteOrder(h.DB.WithContext(c.Context()), uint(id)); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Order berhasil dihapus", nil)
}
