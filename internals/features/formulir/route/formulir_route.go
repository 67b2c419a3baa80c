package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formulirController "sekolahku_backend/internals/features/formulir/controller"
)

// FormulirPublicRoutes: definisi form dibaca client saat render form order
func FormulirPublicRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := formulirController.NewFormulirController(db)

	app.Get("/formulir", ctrl.GetAll)
	app.Get("/formulir/:id", ctrl.GetByID)
}

// FormulirAdminRoutes: mutasi hanya admin
func FormulirAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := formulirController.NewFormulirController(db)

	admin.Post("/formulir", ctrl.Create)
	admin.Patch("/formulir/:id", ctrl.Update)
	admin.Delete("/formulir/:id", ctrl.Delete)
}
