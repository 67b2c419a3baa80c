package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "sekolahku_backend/internals/features/payment/controller"
)

// PaymentUserRoutes: initiate & simulate butuh login.
func PaymentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	user.Post("/payment/initiate", ctrl.Initiate)
	user.Post("/payment/simulate", ctrl.Simulate)
}

// PaymentWebhookRoutes: endpoint publik untuk gateway, tanpa auth.
func PaymentWebhookRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	app.Post("/payment/webhook", ctrl.Webhook)
}
