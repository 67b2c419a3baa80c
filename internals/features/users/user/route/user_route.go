package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "sekolahku_backend/internals/features/users/user/controller"
)

func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	user.Get("/users/me", ctrl.Me)
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	admin.Get("/users", ctrl.GetAll)
}
