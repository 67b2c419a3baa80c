package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	aksesRoute "sekolahku_backend/internals/features/akses_materi/route"
	analyticsRoute "sekolahku_backend/internals/features/analytics/route"
	formulirRoute "sekolahku_backend/internals/features/formulir/route"
	katalogRoute "sekolahku_backend/internals/features/katalog/route"
	orderRoute "sekolahku_backend/internals/features/orders/route"
	paymentRoute "sekolahku_backend/internals/features/payment/route"
	siswaRoute "sekolahku_backend/internals/features/siswa/siswa/route"
	siswaKelasRoute "sekolahku_backend/internals/features/siswa/siswa_kelas/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	userRoute "sekolahku_backend/internals/features/users/user/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	// Katalog read-only, definisi formulir, webhook gateway, pencatatan klik.
	log.Println("[INFO] Mounting PUBLIC routes...")
	authRoute.AuthRoutes(app, db)
	katalogRoute.KatalogPublicRoutes(app, db)
	formulirRoute.FormulirPublicRoutes(app, db)
	paymentRoute.PaymentWebhookRoutes(app, db)
	analyticsRoute.AnalyticsPublicRoutes(app, db)

	// ===================== USER (login) =====================
	log.Println("[INFO] Mounting USER routes...")
	user := app.Group("", authMiddleware.AuthMiddleware(db))
	userRoute.UserRoutes(user, db)
	orderRoute.OrderUserRoutes(user, db)
	paymentRoute.PaymentUserRoutes(user, db)

	// ===================== STAFF (admin, guru, PJ) =====================
	// Data siswa & enrollment juga boleh dikelola guru dan PJ.
	log.Println("[INFO] Mounting STAFF routes...")
	staff := app.Group("",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("mengelola data siswa"), constants.StaffRoles...),
	)
	siswaRoute.SiswaStaffRoutes(staff, db)
	siswaKelasRoute.SiswaKelasStaffRoutes(staff, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Mounting ADMIN routes...")
	admin := app.Group("",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("mengelola data sekolah"), constants.AdminAndAbove...),
	)
	userRoute.UserAdminRoutes(admin, db)
	katalogRoute.KatalogAdminRoutes(admin, db)
	formulirRoute.FormulirAdminRoutes(admin, db)
	orderRoute.OrderAdminRoutes(admin, db)
	aksesRoute.AksesMateriAdminRoutes(admin, db)
	analyticsRoute.AnalyticsAdminRoutes(admin, db)
}
