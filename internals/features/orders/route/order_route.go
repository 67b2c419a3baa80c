package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderController "sekolahku_backend/internals/features/orders/controller"
)

// OrderUserRoutes: user login bisa membuat, melihat, dan membatalkan ordernya.
func OrderUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := orderController.NewOrderController(db)

	user.Post("/orders", ctrl.Create)
	user.Get("/orders", ctrl.GetAll)
	user.Get("/orders/:id", ctrl.GetByID)
	user.Post("/orders/:id/cancel", ctrl.Cancel)
}

// OrderAdminRoutes: perubahan status & hard delete hanya admin.
func OrderAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := orderController.NewOrderController(db)

	admin.Patch("/orders/:id", ctrl.UpdateStatus)
	admin.Delete("/orders/:id", ctrl.Delete)
}
