package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	siswaController "sekolahku_backend/internals/features/siswa/siswa/controller"
)

// SiswaStaffRoutes: data induk siswa dikelola staff (admin, guru, PJ)
func SiswaStaffRoutes(staff fiber.Router, db *gorm.DB) {
	ctrl := siswaController.NewSiswaController(db)

	staff.Post("/siswa", ctrl.Create)
	staff.Get("/siswa", ctrl.GetAll)
	staff.Get("/siswa/:id", ctrl.GetByID)
	staff.Patch("/siswa/:id", ctrl.Update)
	staff.Delete("/siswa/:id", ctrl.Delete)
}
