package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	siswaKelasController "sekolahku_backend/internals/features/siswa/siswa_kelas/controller"
)

// SiswaKelasStaffRoutes: enrollment dikelola staff (admin, guru, PJ)
func SiswaKelasStaffRoutes(staff fiber.Router, db *gorm.DB) {
	ctrl := siswaKelasController.NewSiswaKelasController(db)

	staff.Post("/siswa-kelas", ctrl.Enroll)
	staff.Post("/siswa-kelas/bulk", ctrl.EnrollBulk)
	staff.Get("/siswa-kelas", ctrl.GetAll)
	staff.Patch("/siswa-kelas/:id", ctrl.Update)
	staff.Delete("/siswa-kelas/:id", ctrl.Delete)
}
