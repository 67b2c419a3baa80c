package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	katalogController "sekolahku_backend/internals/features/katalog/controller"
)

// KatalogPublicRoutes: read-only katalog untuk semua orang
func KatalogPublicRoutes(app fiber.Router, db *gorm.DB) {
	kategori := katalogController.NewKategoriController(db)
	kelas := katalogController.NewKelasController(db)
	produk := katalogController.NewProdukController(db)

	app.Get("/kategori", kategori.GetAll)
	app.Get("/kategori/:id", kategori.GetByID)
	app.Get("/kelas", kelas.GetAll)
	app.Get("/kelas/:id", kelas.GetByID)
	app.Get("/produk", produk.GetAll)
	app.Get("/produk/:id", produk.GetByID)
}

// KatalogAdminRoutes: mutasi katalog, hanya admin
func KatalogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	kategori := katalogController.NewKategoriController(db)
	kelas := katalogController.NewKelasController(db)
	produk := katalogController.NewProdukController(db)

	admin.Post("/kategori", kategori.Create)
	admin.Patch("/kategori/:id", kategori.Update)
	admin.Delete("/kategori/:id", kategori.Delete)

	admin.Post("/kelas", kelas.Create)
	admin.Patch("/kelas/:id", kelas.Update)
	admin.Delete("/kelas/:id", kelas.Delete)

	admin.Post("/produk", produk.Create)
	admin.Patch("/produk/:id", produk.Update)
	admin.Delete("/produk/:id", produk.Delete)
}
