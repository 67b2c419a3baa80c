package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	orderModel "sekolahku_backend/internals/features/orders/model"
	orderService "sekolahku_backend/internals/features/orders/service"
	"sekolahku_backend/internals/features/payment/dto"
)

// Simulator gateway pembayaran: bentuk dua fase sama persis dengan gateway
// sungguhan (token dulu, notifikasi belakangan) supaya handler notifikasi
// tidak perlu tahu pembayarannya disimulasikan.

const (
	SimulatorProvider    = "simulator"
	SimulatorPaymentType = "simulator"

	simulatorLatency = 300 * time.Millisecond
)

// CreateSnapToken membuat token mock yang menyematkan order id + waktu.
// Tanpa network call, tanpa persistensi.
func CreateSnapToken(order *orderModel.Order) (token string, orderRef string, amount int) {
	now := time.Now().Unix()
	token = fmt.Sprintf("SNAP-%d-%d", order.OrderID, now)
	orderRef = orderService.BuildOrderReference(order.OrderID)
	return token, orderRef, order.OrderTotalAmount
}

// SimulatePayment mem-parse order id dari token, menunggu sejenak (latency
// buatan), lalu mengembalikan notifikasi berbentuk payload webhook.
// desiredOutcome: success → settlement, pending → pending, selainnya → deny.
func SimulatePayment(token, desiredOutcome string) (*dto.PaymentNotification, error) {
	orderID, err := parseSnapToken(token)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	time.Sleep(simulatorLatency)

	var txStatus string
	switch desiredOutcome {
	case "success":
		txStatus = "settlement"
	case "pending":
		txStatus = "pending"
	default:
		txStatus = "deny"
	}

	return &dto.PaymentNotification{
		OrderID:           orderService.BuildOrderReference(orderID),
		TransactionStatus: txStatus,
		TransactionID:     "SIM-" + uuid.NewString()[:8],
		PaymentType:       SimulatorPaymentType,
	}, nil
}

func parseSnapToken(token string) (uint, error) {
	parts := strings.Split(token, "-")
	if len(parts) < 2 || parts[0] != "SNAP" {
		return 0, fmt.Errorf("format token tidak dikenali: %s", token)
	}
	var id uint
	if _, err := fmt.Sscanf(parts[1], "%d", &id); err != nil || id == 0 {
		return 0, fmt.Errorf("format token tidak dikenali: %s", token)
	}
	return id, nil
}
