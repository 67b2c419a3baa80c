package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	orderModel "sekolahku_backend/internals/features/orders/model"
	orderService "sekolahku_backend/internals/features/orders/service"
	"sekolahku_backend/internals/features/payment/dto"
	"sekolahku_backend/internals/features/payment/service"
	helper "sekolahku_backend/internals/helpers"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validator: validator.New()}
}

// POST /payment/initiate
func (h *PaymentController) Initiate(c *fiber.Ctx) error {
	var req dto.InitiatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var order orderModel.Order
	if err := h.DB.WithContext(c.Context()).First(&order, "order_id = ?", req.IDOrder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	if order.OrderStatusPembayaran == orderModel.PaymentStatusPaid {
		return helper.Error(c, fiber.StatusBadRequest, "Order sudah dibayar")
	}
	if order.OrderStatus == orderModel.OrderStatusCancelled {
		return helper.Error(c, fiber.StatusBadRequest, "Order sudah dibatalkan")
	}

	if configs.UsePaymentSim {
		token, _, amount := service.CreateSnapToken(&order)
		return helper.Success(c, "Token pembayaran berhasil dibuat", dto.InitiatePaymentResponse{
			SnapToken:   token,
			OrderID:     order.OrderID,
			Amount:      amount,
			IsSimulator: true,
		})
	}

	orderRef := orderService.BuildOrderReference(order.OrderID)
	token, redirectURL, err := service.GenerateSnapToken(&order, orderRef)
	if err != nil {
		log.Printf("[ERROR] Gagal membuat Snap token untuk order #%d: %v", order.OrderID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token pembayaran")
	}
	return helper.Success(c, "Token pembayaran berhasil dibuat", dto.InitiatePaymentResponse{
		SnapToken:   token,
		OrderID:     order.OrderID,
		Amount:      order.OrderTotalAmount,
		IsSimulator: false,
		RedirectURL: redirectURL,
	})
}

// POST /payment/simulate — menjalankan fase notifikasi seperti gateway asli
func (h *PaymentController) Simulate(c *fiber.Ctx) error {
	var req dto.SimulatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	notif, err := service.SimulatePayment(req.Token, req.PaymentStatus)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := service.HandleGatewayNotification(h.DB.WithContext(c.Context()), notif); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		log.Printf("[ERROR] Gagal memproses notifikasi simulasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi pembayaran")
	}
	return helper.Success(c, "Simulasi pembayaran diproses", notif)
}

// POST /payment/webhook — dikonsumsi gateway, balasan hanya 200/500 tanpa body
func (h *PaymentController) Webhook(c *fiber.Ctx) error {
	var notif dto.PaymentNotification
	if err := c.BodyParser(&notif); err != nil {
		log.Printf("[ERROR] Payload webhook tidak bisa diparse: %v", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if err := service.HandleGatewayNotification(h.DB.WithContext(c.Context()), &notif); err != nil {
		log.Printf("[ERROR] Gagal memproses webhook: %v", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}
