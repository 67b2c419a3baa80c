package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "sekolahku_backend/internals/features/analytics/controller"
)

// AnalyticsPublicRoutes: pencatatan klik tidak mensyaratkan login.
func AnalyticsPublicRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := analyticsController.NewAnalyticsController(db)

	app.Post("/analytics/klik-tombol", ctrl.Record)
}

// AnalyticsAdminRoutes: agregat hanya untuk staff/admin.
func AnalyticsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := analyticsController.NewAnalyticsController(db)

	admin.Get("/analytics/klik-tombol/stats", ctrl.Stats)
}
