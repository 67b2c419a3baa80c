package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aksesController "sekolahku_backend/internals/features/akses_materi/controller"
)

// AksesMateriAdminRoutes: buka/kunci/hapus akses hanya staff/admin.
func AksesMateriAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := aksesController.NewAksesMateriController(db)

	admin.Post("/akses-materi/grant", ctrl.Grant)
	admin.Get("/akses-materi", ctrl.GetAll)
	admin.Patch("/akses-materi/:id/revoke", ctrl.Revoke)
	admin.Delete("/akses-materi/:id", ctrl.Delete)
}
